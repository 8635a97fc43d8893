package outbound

import "context"

// PlanPrompt carries the patient and catalog context handed to the
// generative model. Catalog slices are pre-bounded by the caller.
type PlanPrompt struct {
	PatientSummary PatientSummary
	Days           int
	TargetCalories float64
	Season         string
	Foods          []PromptFood
	Recipes        map[string][]PromptRecipe
}

// PatientSummary is the compact patient view embedded in the prompt
type PatientSummary struct {
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	Dosha         string   `json:"dosha"`
	DietaryHabits string   `json:"dietaryHabits"`
	Allergies     []string `json:"allergies"`
	Conditions    []string `json:"conditions"`
}

// PromptFood is the compact food view embedded in the prompt
type PromptFood struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Calories float64 `json:"calories"`
	Rasa     string  `json:"rasa"`
}

// PromptRecipe is the compact recipe view embedded in the prompt
type PromptRecipe struct {
	Name string `json:"name"`
}

// AIPlanResponse is the day-keyed plan shape the model is asked to emit
type AIPlanResponse struct {
	Days []AIDay `json:"days"`
}

// AIDay is one generated day
type AIDay struct {
	Day   int                `json:"day"`
	Meals map[string]*AIMeal `json:"meals"`
}

// AIMeal is one generated meal slot
type AIMeal struct {
	Items    []string `json:"items"`
	Calories float64  `json:"calories"`
	Timing   string   `json:"timing"`
	Notes    string   `json:"notes"`
}

// AIService generates diet plans through an external language model.
// Implementations make a single attempt and return an error on any
// transport, timeout or parse failure; the caller handles fallback.
type AIService interface {
	GeneratePlan(ctx context.Context, prompt PlanPrompt) (*AIPlanResponse, error)
}
