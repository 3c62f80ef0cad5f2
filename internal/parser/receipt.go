package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"mealplanner/internal/models"
)

// The parser is total: malformed or unrecognized lines are skipped, never
// reported as errors, and no store is touched. Persistence is a separate,
// explicit step taken by the caller.

var (
	columnSplit  = regexp.MustCompile(`\t+|\s{2,}`)
	weightExpr   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(克|斤|两|磅|盎司|kg|g|oz|lb)`)
	quantityExpr = regexp.MustCompile(`数量:\s*(\d+(?:\.\d+)?)`)

	// Known ingredient names, then a generic token-plus-food-suffix scan.
	// Longer suffixes come first so 豆腐 is not truncated to 豆.
	knownIngredientExpr = regexp.MustCompile(`(排骨|鸡胸肉|鸡翅|牛肉|咸肉|青江菜|菠菜|莴笋|白菜|香菇|毛豆|大白菜|青葱|韭菜|空心菜|面筋|百叶|蚝油|酸菜|淀粉|地瓜粉|红薯淀粉)`)
	foodSuffixExpr      = regexp.MustCompile(`\S+(?:豆腐|调料|肉|菜|豆|菇|葱|蒜|姜|鱼|虾|蟹|贝|蛋|米|面|粉|油|盐|酱|醋|糖)`)
)

// ParseReceipt converts one raw block of purchase text into inventory
// candidates in source order. Two formats are auto-detected: tab-separated
// table rows and the order-confirmation text whose item lines start with
// "weee_".
func ParseReceipt(text string) []models.InventoryCandidate {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.Contains(text, "\t") {
		return parseTable(text)
	}
	return parseOrderText(text)
}

// parseTable parses rows of name / quantity / unit / optional category.
// A header line mentioning the column names is skipped.
func parseTable(text string) []models.InventoryCandidate {
	var candidates []models.InventoryCandidate

	lines := strings.Split(text, "\n")
	start := 0
	if len(lines) > 0 && isHeaderLine(lines[0]) {
		start = 1
	}

	for _, line := range lines[start:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := columnSplit.Split(line, -1)
		if len(parts) < 3 {
			parts = strings.Fields(line)
		}
		if len(parts) < 3 {
			continue
		}

		item := strings.TrimSpace(parts[0])
		if item == "" {
			continue
		}

		quantity, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || quantity < 0 {
			quantity = 0
		}

		category := ""
		if len(parts) > 3 {
			category = strings.TrimSpace(parts[3])
		}
		if !models.ValidCategory(category) {
			category = Categorize(item)
		}

		candidates = append(candidates, models.InventoryCandidate{
			Item:     item,
			Quantity: quantity,
			Unit:     strings.TrimSpace(parts[2]),
			Category: category,
		})
	}

	return candidates
}

func isHeaderLine(line string) bool {
	return strings.Contains(line, "Ingredient Name") ||
		strings.Contains(line, "食材名称") ||
		strings.Contains(line, "Item")
}

// parseOrderText parses the order-confirmation format: an item line starting
// with "weee_" optionally followed by a price line carrying 数量.
func parseOrderText(text string) []models.InventoryCandidate {
	var candidates []models.InventoryCandidate

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "weee_") {
			continue
		}

		candidate, ok := parseItemLine(line)
		if !ok {
			continue
		}

		if i+1 < len(lines) {
			if match := quantityExpr.FindStringSubmatch(lines[i+1]); match != nil {
				candidate.Quantity, _ = strconv.ParseFloat(match[1], 64)
				i++
			}
		}

		candidates = append(candidates, candidate)
	}

	return candidates
}

// parseItemLine extracts the item name and unit from a "weee_" line.
// The listing mixes brand names, specifiers, and weights around the actual
// ingredient, so extraction is heuristic: strip the weight, look for a known
// ingredient or a food-suffixed token, then fall back to the last
// non-specifier word.
func parseItemLine(line string) (models.InventoryCandidate, bool) {
	content := strings.TrimSpace(strings.TrimPrefix(line, "weee_"))

	unit := ""
	if match := weightExpr.FindStringSubmatchIndex(content); match != nil {
		unit = normalizeWeightUnit(content[match[4]:match[5]])
		content = strings.TrimSpace(content[:match[0]])
	}
	if unit == "" {
		unit = containerUnit(content)
	}

	item := knownIngredientExpr.FindString(content)
	if item == "" {
		item = foodSuffixExpr.FindString(content)
	}
	if item == "" {
		item = lastMeaningfulWord(content)
	}
	if item == "" {
		return models.InventoryCandidate{}, false
	}

	return models.InventoryCandidate{
		Item:     item,
		Unit:     unit,
		Category: Categorize(item),
	}, true
}

func normalizeWeightUnit(unit string) string {
	switch unit {
	case "g":
		return "克"
	case "kg":
		return "千克"
	case "oz":
		return "盎司"
	case "lb":
		return "磅"
	}
	return unit
}

// containerUnit recognizes explicit packaging units mentioned in the line.
func containerUnit(content string) string {
	switch {
	case strings.Contains(content, "个"):
		return "个"
	case strings.Contains(content, "把"):
		return "把"
	case strings.Contains(content, "包"), strings.Contains(content, "袋"):
		return "包"
	case strings.Contains(content, "盒"):
		return "盒"
	case strings.Contains(content, "瓶"):
		return "瓶"
	case strings.Contains(content, "磅"):
		return "磅"
	case strings.Contains(content, "盎司"):
		return "盎司"
	case strings.Contains(content, "克"):
		return "克"
	case strings.Contains(content, "斤"):
		return "斤"
	}
	return ""
}

// Common specifiers that are never the item name themselves.
var specifiers = map[string]bool{
	"原味": true, "日式": true, "台湾": true, "新鲜": true, "嫩": true,
	"大": true, "小": true,
	"1": true, "2": true, "3": true, "4": true, "5": true,
}

func lastMeaningfulWord(content string) string {
	parts := strings.Fields(content)
	for i := len(parts) - 1; i >= 0; i-- {
		if !specifiers[parts[i]] && utf8.RuneCountInString(parts[i]) > 1 {
			return parts[i]
		}
	}
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return ""
}
