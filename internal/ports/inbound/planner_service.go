// Package inbound defines the driving-side ports: the service interfaces
// exposed to HTTP handlers and other entry points.
package inbound

import (
	"context"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/plan"
)

// PlanOptions tunes a plan generation request. Zero values fall back to
// service defaults.
type PlanOptions struct {
	Days           int     `json:"days" validate:"omitempty,min=1,max=30"`
	TargetCalories float64 `json:"targetCalories" validate:"omitempty,gt=0"`
	Season         string  `json:"season"`
	UseGenerative  bool    `json:"useGenerative"`
}

// FoodSuggestion is one ranked food with serving guidance
type FoodSuggestion struct {
	Food     catalog.FoodItem `json:"food"`
	Score    float64          `json:"score"`
	MealType string           `json:"mealType"`
	Guidance string           `json:"guidance"`
}

// SuggestionResult bundles time-of-day food suggestions
type SuggestionResult struct {
	MealType    string           `json:"mealType"`
	Suggestions []FoodSuggestion `json:"suggestions"`
	Advice      []string         `json:"advice"`
}

// MealAnalysis is the nutritional and Ayurvedic breakdown of an
// arbitrary set of meal items.
type MealAnalysis struct {
	Nutrition plan.Nutrition        `json:"nutrition"`
	Balance   plan.AyurvedicBalance `json:"ayurvedicBalance"`
}

// PlannerService generates diet plans and food recommendations
type PlannerService interface {
	// GenerateDietPlan builds a plan for the patient, generative when
	// requested and available, deterministic otherwise.
	GenerateDietPlan(ctx context.Context, patientID string, opts PlanOptions) (*plan.DietPlan, error)

	// GetSuitableFoods returns the catalog filtered and ranked for the
	// patient, best first.
	GetSuitableFoods(ctx context.Context, patientID string, season string) ([]catalog.FoodItem, error)

	// SuggestFoods recommends foods for the meal slot implied by the
	// hour of day, with serving guidance.
	SuggestFoods(ctx context.Context, patientID string, hour int, season string) (*SuggestionResult, error)

	// AnalyzeMealSet computes nutrition totals and Ayurvedic balance
	// for an ad-hoc set of items. The patient id is optional; when
	// empty the balance is graded against the default primary dosha.
	AnalyzeMealSet(ctx context.Context, patientID string, items []plan.MealItem) (*MealAnalysis, error)
}
