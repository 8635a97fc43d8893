package planner

import (
	"fmt"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
)

// generalGuidelines builds the condition- and age-aware advice attached
// to every plan.
func generalGuidelines(p *patient.Profile) []string {
	guidelines := []string{
		"Drink warm water throughout the day",
		"Eat your largest meal at lunch when digestion is strongest",
		"Keep at least 3 hours between dinner and bedtime",
	}
	if p.Age() > 60 {
		guidelines = append(guidelines, "Prefer soft, well-cooked foods that are easy to digest")
	}
	if p.HasCondition(conditionDiabetesTag) {
		guidelines = append(guidelines, "Avoid refined sugar; prefer whole grains and high-fiber foods")
	}
	if p.HasCondition(conditionHypertensionTag) {
		guidelines = append(guidelines, "Limit added salt; season with herbs and spices instead")
	}
	return guidelines
}

// ayurvedicTips builds dosha-specific lifestyle advice.
func ayurvedicTips(p *patient.Profile) []string {
	switch p.Dosha().Primary() {
	case "pitta":
		return []string{
			"Favor cooling foods and avoid excess spice and sour tastes",
			"Eat at regular times and avoid skipping meals",
		}
	case "kapha":
		return []string{
			"Favor light, warm and dry foods; minimize heavy and oily dishes",
			"Make breakfast light and avoid daytime sleep after meals",
		}
	default:
		return []string{
			"Favor warm, moist and grounding foods; minimize raw and cold dishes",
			"Keep regular meal times and eat in a calm setting",
		}
	}
}

// servingGuidance phrases the recommendation attached to a suggested food.
func servingGuidance(f catalog.FoodItem, mealType string) string {
	switch f.Virya {
	case catalog.ViryaHeating:
		return fmt.Sprintf("Take a moderate portion of %s for %s; its heating nature suits cooler hours", f.Name, mealType)
	case catalog.ViryaCooling:
		return fmt.Sprintf("Enjoy %s for %s; its cooling nature balances midday heat", f.Name, mealType)
	default:
		return fmt.Sprintf("Include %s in your %s", f.Name, mealType)
	}
}
