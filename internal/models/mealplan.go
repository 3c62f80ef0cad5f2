package models

import "strings"

// WeekdayLabels enumerates the seven weekday labels, indexed 0=周日.
var WeekdayLabels = []string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// Placeholder marks a day slot with no dish assigned.
const Placeholder = "(待定)"

// MealPlan assigns an ordered list of dish names to each of the seven
// weekday labels. Order records the labels in plan order, starting from the
// caller-chosen weekday; Days always carries exactly seven keys.
type MealPlan struct {
	Order []string
	Days  map[string][]string
}

// NewMealPlan builds an empty plan whose day order starts at startDay
// (0=周日) and wraps through the week.
func NewMealPlan(startDay int) MealPlan {
	plan := MealPlan{Days: make(map[string][]string, len(WeekdayLabels))}
	for offset := range WeekdayLabels {
		label := WeekdayLabels[(startDay+offset)%len(WeekdayLabels)]
		plan.Order = append(plan.Order, label)
		plan.Days[label] = nil
	}
	return plan
}

// Render serializes the plan as block text: each block is the weekday label
// followed by one dish name per line, blocks separated by one blank line.
// The client's structured-edit view re-parses this shape, so it must stay
// stable.
func (p MealPlan) Render() string {
	blocks := make([]string, 0, len(p.Order))
	for _, label := range p.Order {
		lines := append([]string{label}, p.Days[label]...)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// ParseMealPlan parses block text back into a plan, using the seven fixed
// weekday labels as block delimiters. Blank lines are separators and are
// skipped; any label missing from the text is restored with an empty list
// so the seven-key invariant holds.
func ParseMealPlan(text string) MealPlan {
	labels := make(map[string]bool, len(WeekdayLabels))
	for _, label := range WeekdayLabels {
		labels[label] = true
	}

	plan := MealPlan{Days: make(map[string][]string, len(WeekdayLabels))}
	current := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if labels[line] {
			current = line
			if _, seen := plan.Days[current]; !seen {
				plan.Order = append(plan.Order, current)
				plan.Days[current] = []string{}
			}
			continue
		}
		if current != "" {
			plan.Days[current] = append(plan.Days[current], line)
		}
	}

	for _, label := range WeekdayLabels {
		if _, seen := plan.Days[label]; !seen {
			plan.Order = append(plan.Order, label)
			plan.Days[label] = []string{}
		}
	}
	return plan
}
