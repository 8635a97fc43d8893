package planner

import (
	"strings"
	"time"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
	"github.com/nutriveda/planner/internal/ports/outbound"
)

// reconcilePlan normalizes a generated response into the canonical plan
// shape. Item names are resolved against the patient's suitable catalog
// case-insensitively; unresolved names become placeholder foods with the
// meal's calories split evenly so totals stay meaningful. Days the model
// skipped, and meal slots it left out or empty, are composed
// deterministically so the plan is always fully populated.
func reconcilePlan(resp *outbound.AIPlanResponse, suitable []catalog.FoodItem,
	p *patient.Profile, targetCalories float64, days int, season string) *plan.DietPlan {

	byName := make(map[string]catalog.FoodItem, len(suitable))
	for _, f := range suitable {
		byName[strings.ToLower(strings.TrimSpace(f.Name))] = f
	}
	primary := p.Dosha().Primary()

	result := &plan.DietPlan{
		PatientID:         p.ID().String(),
		TargetCalories:    targetCalories,
		GeneralGuidelines: generalGuidelines(p),
		AyurvedicTips:     ayurvedicTips(p),
		GeneratedAt:       time.Now(),
		Source:            plan.SourceGenerative,
	}

	for i := 0; i < days; i++ {
		var aiDay *outbound.AIDay
		for j := range resp.Days {
			if resp.Days[j].Day == i+1 {
				aiDay = &resp.Days[j]
				break
			}
		}
		if aiDay == nil && i < len(resp.Days) {
			aiDay = &resp.Days[i]
		}
		if aiDay == nil {
			result.Days = append(result.Days, composeDay(i+1, suitable, p, targetCalories, season))
			continue
		}

		var meals plan.Meals
		targets := []*plan.MealSlot{&meals.Breakfast, &meals.MorningSnack, &meals.Lunch, &meals.EveningSnack, &meals.Dinner}
		for si, spec := range daySlots {
			slot := plan.MealSlot{Timing: spec.Timing}
			if aiMeal := aiDay.Meals[spec.Name]; aiMeal != nil {
				slot = reconcileMeal(aiMeal, byName, spec)
			}
			if len(slot.Items) == 0 {
				slot = composeSlot(suitable, spec, primary, season, targetCalories)
			}
			*targets[si] = slot
		}

		items := meals.AllItems()
		result.Days = append(result.Days, plan.DayPlan{
			Day:       i + 1,
			Meals:     meals,
			Nutrition: plan.TotalNutrition(items),
			Balance:   plan.ComputeBalance(items, primary),
		})
	}
	return result
}

func reconcileMeal(aiMeal *outbound.AIMeal, byName map[string]catalog.FoodItem, spec slotSpec) plan.MealSlot {
	slot := plan.MealSlot{
		Timing: spec.Timing,
		Notes:  aiMeal.Notes,
	}
	if strings.TrimSpace(aiMeal.Timing) != "" {
		slot.Timing = aiMeal.Timing
	}

	perItem := 0.0
	if len(aiMeal.Items) > 0 && aiMeal.Calories > 0 {
		perItem = aiMeal.Calories / float64(len(aiMeal.Items))
	}

	for _, name := range aiMeal.Items {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if f, ok := byName[key]; ok {
			slot.Items = append(slot.Items, plan.MealItem{Food: f, Quantity: 1})
			continue
		}
		placeholder := catalog.FoodItem{
			Name:     strings.TrimSpace(name),
			Category: catalog.CategoryGeneral,
			Calories: perItem,
		}
		placeholder.ApplyDefaults()
		slot.Items = append(slot.Items, plan.MealItem{Food: placeholder, Quantity: 1})
	}
	slot.Recalculate()
	return slot
}
