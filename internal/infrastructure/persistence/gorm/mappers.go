package gorm

import (
	"encoding/json"
	"fmt"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
)

// PatientToModel converts a patient profile to its GORM model. Derived
// values (BMI, BMR) are not stored; the domain recomputes them on load.
func PatientToModel(p *patient.Profile) *PatientModel {
	return &PatientModel{
		ID:              p.ID(),
		Name:            p.Name(),
		Age:             p.Age(),
		Gender:          string(p.Gender()),
		HeightCm:        p.HeightCm(),
		WeightKg:        p.WeightKg(),
		Dosha:           string(p.Dosha()),
		DietaryHabits:   string(p.DietaryHabits()),
		Allergies:       p.Allergies(),
		Conditions:      p.Conditions(),
		ActivityLevel:   string(p.ActivityLevel()),
		CalorieOverride: p.CalorieOverride(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

// ModelToPatient converts a GORM model to the domain profile
func ModelToPatient(m *PatientModel) *patient.Profile {
	return patient.Restore(
		m.ID, m.Name, m.Age, patient.Gender(m.Gender), m.HeightCm, m.WeightKg,
		patient.Dosha(m.Dosha), patient.DietaryHabit(m.DietaryHabits),
		m.Allergies, m.Conditions,
		patient.ActivityLevel(m.ActivityLevel), m.CalorieOverride,
		m.CreatedAt, m.UpdatedAt,
	)
}

// FoodToModel converts a catalog food to its GORM model
func FoodToModel(f *catalog.FoodItem) *FoodModel {
	return &FoodModel{
		ID:       f.ID,
		Name:     f.Name,
		Category: string(f.Category),
		Calories: f.Calories,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fat:      f.Fat,
		Fiber:    f.Fiber,
		Sugar:    f.Sugar,
		Sodium:   f.Sodium,
		Rasa:     string(f.Rasa),
		Virya:    string(f.Virya),
		Guna:     f.Guna,
		Vipaka:   string(f.Vipaka),
		DoshaImpact: JSONField{
			"vata":  string(f.DoshaImpact.Vata),
			"pitta": string(f.DoshaImpact.Pitta),
			"kapha": string(f.DoshaImpact.Kapha),
		},
		Season:    f.Season,
		Region:    f.Region,
		Allergens: f.Allergens,
	}
}

// ModelToFood converts a GORM model to the catalog food
func ModelToFood(m *FoodModel) catalog.FoodItem {
	f := catalog.FoodItem{
		ID:       m.ID,
		Name:     m.Name,
		Category: catalog.Category(m.Category),
		Calories: m.Calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fat:      m.Fat,
		Fiber:    m.Fiber,
		Sugar:    m.Sugar,
		Sodium:   m.Sodium,
		Rasa:     catalog.Rasa(m.Rasa),
		Virya:    catalog.Virya(m.Virya),
		Guna:     m.Guna,
		Vipaka:   catalog.Vipaka(m.Vipaka),
		DoshaImpact: catalog.DoshaImpact{
			Vata:  catalog.DoshaEffect(jsonString(m.DoshaImpact, "vata")),
			Pitta: catalog.DoshaEffect(jsonString(m.DoshaImpact, "pitta")),
			Kapha: catalog.DoshaEffect(jsonString(m.DoshaImpact, "kapha")),
		},
		Season:    m.Season,
		Region:    m.Region,
		Allergens: m.Allergens,
	}
	f.ApplyDefaults()
	return f
}

// RecipeToModel converts a catalog recipe to its GORM model
func RecipeToModel(r *catalog.RecipeItem) *RecipeModel {
	return &RecipeModel{
		ID:       r.ID,
		Name:     r.Name,
		MealType: string(r.MealType),
		DoshaSuitability: JSONField{
			"vata":  r.DoshaSuitability.Vata,
			"pitta": r.DoshaSuitability.Pitta,
			"kapha": r.DoshaSuitability.Kapha,
		},
		Season:          r.Season,
		Allergens:       r.Allergens,
		CookTimeMinutes: r.CookTimeMinutes,
		Ingredients:     r.Ingredients,
	}
}

// ModelToRecipe converts a GORM model to the catalog recipe
func ModelToRecipe(m *RecipeModel) catalog.RecipeItem {
	return catalog.RecipeItem{
		ID:       m.ID,
		Name:     m.Name,
		MealType: catalog.MealType(m.MealType),
		DoshaSuitability: catalog.DoshaSuitability{
			Vata:  jsonBool(m.DoshaSuitability, "vata"),
			Pitta: jsonBool(m.DoshaSuitability, "pitta"),
			Kapha: jsonBool(m.DoshaSuitability, "kapha"),
		},
		Season:          m.Season,
		Allergens:       m.Allergens,
		CookTimeMinutes: m.CookTimeMinutes,
		Ingredients:     m.Ingredients,
	}
}

// ChartToModel converts a diet chart to its GORM model. Meals serialize
// to a JSON document; derived totals stay out of storage.
func ChartToModel(c *plan.DietChart) (*ChartModel, error) {
	meals, err := json.Marshal(c.Meals())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize chart meals: %w", err)
	}
	return &ChartModel{
		ID:           c.ID(),
		PatientID:    c.PatientID(),
		Name:         c.Name(),
		Status:       string(c.Status()),
		Goals:        c.Goals(),
		Dietitian:    c.Dietitian(),
		Meals:        meals,
		PrimaryDosha: c.PrimaryDosha(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}, nil
}

// ModelToChart converts a GORM model to the domain chart, recomputing
// nutrition and balance from the stored meals.
func ModelToChart(m *ChartModel) (*plan.DietChart, error) {
	var meals []plan.ChartMeal
	if len(m.Meals) > 0 {
		if err := json.Unmarshal(m.Meals, &meals); err != nil {
			return nil, fmt.Errorf("failed to deserialize chart meals: %w", err)
		}
	}
	return plan.RestoreChart(
		m.ID, m.PatientID, m.Name, plan.ChartStatus(m.Status), m.Goals,
		m.Dietitian, meals, m.PrimaryDosha, m.CreatedAt, m.UpdatedAt,
	), nil
}

func jsonString(j JSONField, key string) string {
	if v, ok := j[key].(string); ok {
		return v
	}
	return ""
}

func jsonBool(j JSONField, key string) bool {
	if v, ok := j[key].(bool); ok {
		return v
	}
	return false
}
