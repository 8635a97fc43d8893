// Package outbound defines the driven-side ports: persistence, caching
// and external service interfaces implemented by the infrastructure layer.
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
)

// ErrNotFound is returned by repositories when the requested record does
// not exist. Callers use it to tell a missing record apart from an
// infrastructure failure.
var ErrNotFound = errors.New("record not found")

// PatientRepository persists patient profiles
type PatientRepository interface {
	Create(ctx context.Context, profile *patient.Profile) error
	Update(ctx context.Context, profile *patient.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*patient.Profile, error)
	List(ctx context.Context, offset, limit int) ([]*patient.Profile, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FoodRepository persists catalog foods
type FoodRepository interface {
	Create(ctx context.Context, food *catalog.FoodItem) error
	CreateBatch(ctx context.Context, foods []catalog.FoodItem) error
	FindByID(ctx context.Context, id string) (*catalog.FoodItem, error)
	FindAll(ctx context.Context) ([]catalog.FoodItem, error)
	FindByCategories(ctx context.Context, categories []catalog.Category) ([]catalog.FoodItem, error)
	SearchByName(ctx context.Context, query string, limit int) ([]catalog.FoodItem, error)
}

// RecipeRepository persists catalog recipes
type RecipeRepository interface {
	Create(ctx context.Context, recipe *catalog.RecipeItem) error
	FindByID(ctx context.Context, id string) (*catalog.RecipeItem, error)
	FindByMealType(ctx context.Context, mealType catalog.MealType, limit int) ([]catalog.RecipeItem, error)
	FindAll(ctx context.Context) ([]catalog.RecipeItem, error)
}

// ChartRepository persists diet charts
type ChartRepository interface {
	Create(ctx context.Context, chart *plan.DietChart) error
	Update(ctx context.Context, chart *plan.DietChart) error
	FindByID(ctx context.Context, id uuid.UUID) (*plan.DietChart, error)
	FindByPatientID(ctx context.Context, patientID string) ([]*plan.DietChart, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CacheRepository provides key-value caching with TTL
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
