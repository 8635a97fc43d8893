// Package plan holds the diet plan and diet chart domain types together
// with the nutrition and Ayurvedic balance calculations shared by the
// deterministic planner and the generative adapter.
package plan

import (
	"math"
	"time"

	"github.com/nutriveda/planner/internal/domain/catalog"
)

// PlanSource records which pathway produced a plan
type PlanSource string

const (
	SourceGenerative PlanSource = "generative"
	SourceFallback   PlanSource = "fallback"
)

// MealItem is one food with a serving quantity. Quantity is a multiplier
// on the food's per-100g nutritional values.
type MealItem struct {
	Food     catalog.FoodItem `json:"food"`
	Quantity float64          `json:"quantity"`
}

// Calories returns the item's calorie contribution at its quantity
func (m MealItem) Calories() float64 {
	return m.Food.Calories * m.Quantity
}

// MealSlot is one meal of a day
type MealSlot struct {
	Items         []MealItem `json:"items"`
	TotalCalories float64    `json:"totalCalories"`
	Timing        string     `json:"timing,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// Recalculate refreshes the slot's calorie total from its items
func (m *MealSlot) Recalculate() {
	total := 0.0
	for _, it := range m.Items {
		total += it.Calories()
	}
	m.TotalCalories = round2(total)
}

// Meals groups the five daily slots
type Meals struct {
	Breakfast    MealSlot `json:"breakfast"`
	MorningSnack MealSlot `json:"morningSnack"`
	Lunch        MealSlot `json:"lunch"`
	EveningSnack MealSlot `json:"eveningSnack"`
	Dinner       MealSlot `json:"dinner"`
}

// Slots returns the meals in canonical day order
func (m *Meals) Slots() []*MealSlot {
	return []*MealSlot{&m.Breakfast, &m.MorningSnack, &m.Lunch, &m.EveningSnack, &m.Dinner}
}

// AllItems flattens every item of every slot in day order
func (m *Meals) AllItems() []MealItem {
	var items []MealItem
	for _, slot := range m.Slots() {
		items = append(items, slot.Items...)
	}
	return items
}

// Nutrition is an aggregate of macro nutrients
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add accumulates one item's quantity-weighted contribution
func (n *Nutrition) Add(item MealItem) {
	n.Calories += item.Food.Calories * item.Quantity
	n.Protein += item.Food.Protein * item.Quantity
	n.Carbs += item.Food.Carbs * item.Quantity
	n.Fat += item.Food.Fat * item.Quantity
	n.Fiber += item.Food.Fiber * item.Quantity
}

// Round rounds every field to two decimals
func (n *Nutrition) Round() {
	n.Calories = round2(n.Calories)
	n.Protein = round2(n.Protein)
	n.Carbs = round2(n.Carbs)
	n.Fat = round2(n.Fat)
	n.Fiber = round2(n.Fiber)
}

// TotalNutrition sums the quantity-weighted nutrition of the items,
// rounded to two decimals.
func TotalNutrition(items []MealItem) Nutrition {
	var n Nutrition
	for _, it := range items {
		n.Add(it)
	}
	n.Round()
	return n
}

// DayPlan is one day of a diet plan
type DayPlan struct {
	Day       int              `json:"day"`
	Meals     Meals            `json:"meals"`
	Nutrition Nutrition        `json:"nutrition"`
	Balance   AyurvedicBalance `json:"ayurvedicBalance"`
}

// DietPlan is a complete multi-day plan for one patient
type DietPlan struct {
	PatientID         string     `json:"patientId"`
	TargetCalories    float64    `json:"targetCalories"`
	Days              []DayPlan  `json:"days"`
	GeneralGuidelines []string   `json:"generalGuidelines"`
	AyurvedicTips     []string   `json:"ayurvedicTips"`
	GeneratedAt       time.Time  `json:"generatedAt"`
	Source            PlanSource `json:"source"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
