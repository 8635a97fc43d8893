package planner

import (
	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
)

// Thresholds for condition-based exclusions, per 100g.
const (
	maxSugarForDiabetes      = 10.0
	maxSodiumForHypertension = 500.0
	conditionDiabetesTag     = "diabetes"
	conditionHypertensionTag = "hypertension"
)

// SuitableFoods filters the catalog down to foods a patient can eat in
// the given season. Exclusions are hard: any allergen overlap, dietary
// habit conflict, condition threshold breach or season mismatch removes
// the food. Input order is preserved.
func SuitableFoods(foods []catalog.FoodItem, p *patient.Profile, season string) []catalog.FoodItem {
	suitable := make([]catalog.FoodItem, 0, len(foods))
	for _, f := range foods {
		if !foodSuits(f, p, season) {
			continue
		}
		suitable = append(suitable, f)
	}
	return suitable
}

func foodSuits(f catalog.FoodItem, p *patient.Profile, season string) bool {
	if f.HasAllergen(p.Allergies()) {
		return false
	}

	habits := p.DietaryHabits()
	if f.Category.NonVegetarian() {
		if f.Category == catalog.CategoryEggs {
			if habits.ExcludesEggs() {
				return false
			}
		} else if habits.ExcludesMeat() {
			return false
		}
	}

	if p.HasCondition(conditionDiabetesTag) && f.Sugar > maxSugarForDiabetes {
		return false
	}
	if p.HasCondition(conditionHypertensionTag) && f.Sodium > maxSodiumForHypertension {
		return false
	}

	return f.InSeason(season)
}
