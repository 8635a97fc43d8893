package inbound

import (
	"context"

	"github.com/nutriveda/planner/internal/domain/catalog"
)

// IngestFoodCommand carries the input for adding a catalog food. Missing
// Ayurvedic attributes are defaulted at ingestion.
type IngestFoodCommand struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Category string  `json:"category" validate:"required"`
	Calories float64 `json:"calories" validate:"min=0"`
	Protein  float64 `json:"protein" validate:"min=0"`
	Carbs    float64 `json:"carbs" validate:"min=0"`
	Fat      float64 `json:"fat" validate:"min=0"`
	Fiber    float64 `json:"fiber" validate:"min=0"`
	Sugar    float64 `json:"sugar" validate:"min=0"`
	Sodium   float64 `json:"sodium" validate:"min=0"`

	Rasa        string               `json:"rasa"`
	Virya       string               `json:"virya"`
	Guna        []string             `json:"guna"`
	Vipaka      string               `json:"vipaka"`
	DoshaImpact *catalog.DoshaImpact `json:"doshaImpact"`

	Season    []string `json:"season"`
	Region    []string `json:"region"`
	Allergens []string `json:"allergens"`
}

// CatalogService manages the food and recipe knowledge base
type CatalogService interface {
	IngestFood(ctx context.Context, cmd IngestFoodCommand) (*catalog.FoodItem, error)
	IngestFoods(ctx context.Context, cmds []IngestFoodCommand) ([]catalog.FoodItem, error)
	GetFood(ctx context.Context, foodID string) (*catalog.FoodItem, error)
	SearchFoods(ctx context.Context, query string, limit int) ([]catalog.FoodItem, error)
	ListFoods(ctx context.Context) ([]catalog.FoodItem, error)
}
