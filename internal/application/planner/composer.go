package planner

import (
	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/plan"
)

const (
	maxItemsPerMeal = 4
	calorieSlack    = 1.2
	maxServingQty   = 2.0
)

// ComposeMeal greedily fills one meal slot from ranked candidates. It
// walks the ranking in order, adds a food when the running total stays
// within the slot's calorie slack, and stops at the item cap. Candidates
// must already be filtered and ranked.
func ComposeMeal(ranked []catalog.FoodItem, targetCalories float64) plan.MealSlot {
	var slot plan.MealSlot
	running := 0.0
	for _, f := range ranked {
		if len(slot.Items) >= maxItemsPerMeal {
			break
		}
		if f.Calories <= 0 {
			continue
		}
		if running+f.Calories > targetCalories*calorieSlack {
			continue
		}
		qty := servingQuantity(targetCalories-running, f.Calories)
		slot.Items = append(slot.Items, plan.MealItem{Food: f, Quantity: qty})
		running += f.Calories * qty
	}
	slot.Recalculate()
	return slot
}

// servingQuantity buckets the remaining-to-item calorie ratio into the
// discrete serving sizes dietitians prescribe.
func servingQuantity(remaining, itemCalories float64) float64 {
	ratio := remaining / itemCalories
	if ratio > maxServingQty {
		ratio = maxServingQty
	}
	switch {
	case ratio < 0.5:
		return 0.5
	case ratio < 1:
		return 0.75
	case ratio < 1.5:
		return 1.0
	default:
		return 1.5
	}
}

// preferredCandidates narrows suitable foods to a slot's preferred
// categories, falling back to the full suitable set when the preference
// leaves nothing to work with.
func preferredCandidates(suitable []catalog.FoodItem, spec slotSpec) []catalog.FoodItem {
	preferred := make([]catalog.FoodItem, 0, len(suitable))
	for _, f := range suitable {
		for _, c := range spec.Categories {
			if f.Category == c {
				preferred = append(preferred, f)
				break
			}
		}
	}
	if len(preferred) == 0 {
		return suitable
	}
	return preferred
}
