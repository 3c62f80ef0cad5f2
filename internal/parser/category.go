package parser

import (
	"strings"

	"mealplanner/internal/models"
)

// categoryRule maps one category to the name fragments that imply it.
// Rules are checked in order so the lexicon stays deterministic.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{models.CategoryMeat, []string{"肉", "排骨", "鸡", "鸭", "鹅", "牛", "羊", "猪", "鱼", "虾", "蟹", "贝", "翅", "腿", "胸", "咸肉"}},
	{models.CategorySeafood, []string{"鱼", "虾", "蟹", "贝", "花甲", "扇贝", "三文鱼", "带鱼", "鱿鱼", "章鱼"}},
	{models.CategoryVegetable, []string{"菜", "白菜", "菠菜", "青菜", "韭菜", "芹菜", "莴笋", "萝卜", "胡萝卜", "土豆", "地瓜", "红薯", "香菇", "蘑菇", "葱", "蒜", "姜", "辣椒", "茄子", "黄瓜", "西红柿", "西兰花", "花菜", "包菜", "卷心菜", "高丽菜", "空心菜", "毛豆", "青豆", "豆芽", "丝瓜", "冬瓜", "南瓜", "芦笋", "乌笋", "扁尖笋"}},
	{models.CategorySoy, []string{"豆腐", "豆干", "香干", "百叶", "面筋", "腐竹", "豆皮", "豆泡", "油豆腐"}},
	{models.CategoryEgg, []string{"蛋", "鸡蛋", "鸭蛋", "鹌鹑蛋"}},
	{models.CategoryStaple, []string{"米", "面", "粉", "饺子", "包子", "馒头", "饼", "面包"}},
	{models.CategoryCondiment, []string{"油", "盐", "酱", "醋", "糖", "淀粉", "蚝油", "生抽", "老抽", "料酒", "调料", "酸菜"}},
}

// Names carrying any of these fragments are seafood even when a meat
// keyword also matches.
var seafoodHints = []string{"鱼", "虾", "蟹", "贝"}

// Categorize guesses the category for an ingredient name by keyword lookup,
// defaulting to 其他 when no rule matches.
func Categorize(name string) string {
	for _, rule := range categoryRules {
		if rule.category == models.CategoryMeat && containsAny(name, seafoodHints) {
			continue
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.category
			}
		}
	}
	return models.CategoryOther
}

func containsAny(s string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}
