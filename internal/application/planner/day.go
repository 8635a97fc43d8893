package planner

import (
	"math"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
)

// composeDay builds one full day from the suitable catalog. Every slot
// is composed independently from its preferred categories so the same
// input always yields the same day.
func composeDay(day int, suitable []catalog.FoodItem, p *patient.Profile, targetCalories float64, season string) plan.DayPlan {
	primary := p.Dosha().Primary()

	var meals plan.Meals
	targets := []*plan.MealSlot{&meals.Breakfast, &meals.MorningSnack, &meals.Lunch, &meals.EveningSnack, &meals.Dinner}
	for i, spec := range daySlots {
		*targets[i] = composeSlot(suitable, spec, primary, season, targetCalories)
	}

	items := meals.AllItems()
	return plan.DayPlan{
		Day:       day,
		Meals:     meals,
		Nutrition: plan.TotalNutrition(items),
		Balance:   plan.ComputeBalance(items, primary),
	}
}

// composeSlot fills one meal slot from the slot's preferred categories.
func composeSlot(suitable []catalog.FoodItem, spec slotSpec, primary, season string, targetCalories float64) plan.MealSlot {
	candidates := preferredCandidates(suitable, spec)
	ranked := Rank(candidates, primary, season)
	slot := ComposeMeal(ranked, targetCalories*spec.CalorieShare)
	slot.Timing = spec.Timing
	return slot
}

// dailyCalorieTarget resolves the calorie target by precedence: request
// option, patient override, then 1.5x the patient's BMR.
func dailyCalorieTarget(p *patient.Profile, requested float64) float64 {
	if requested > 0 {
		return requested
	}
	if override := p.CalorieOverride(); override != nil {
		return *override
	}
	return math.Round(p.BMR() * 1.5)
}
