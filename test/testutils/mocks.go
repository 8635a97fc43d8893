// Package testutils provides mock implementations and test data
// factories shared by the test suites.
package testutils

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
	"github.com/nutriveda/planner/internal/ports/outbound"
)

// MockPatientRepository provides a mock implementation of PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, profile *patient.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPatientRepository) Update(ctx context.Context, profile *patient.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*patient.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Profile), args.Error(1)
}

func (m *MockPatientRepository) List(ctx context.Context, offset, limit int) ([]*patient.Profile, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*patient.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFoodRepository provides a mock implementation of FoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(ctx context.Context, food *catalog.FoodItem) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *MockFoodRepository) CreateBatch(ctx context.Context, foods []catalog.FoodItem) error {
	args := m.Called(ctx, foods)
	return args.Error(0)
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id string) (*catalog.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) FindAll(ctx context.Context) ([]catalog.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) FindByCategories(ctx context.Context, categories []catalog.Category) ([]catalog.FoodItem, error) {
	args := m.Called(ctx, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) SearchByName(ctx context.Context, query string, limit int) ([]catalog.FoodItem, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodItem), args.Error(1)
}

// MockRecipeRepository provides a mock implementation of RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *catalog.RecipeItem) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id string) (*catalog.RecipeItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.RecipeItem), args.Error(1)
}

func (m *MockRecipeRepository) FindByMealType(ctx context.Context, mealType catalog.MealType, limit int) ([]catalog.RecipeItem, error) {
	args := m.Called(ctx, mealType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.RecipeItem), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]catalog.RecipeItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.RecipeItem), args.Error(1)
}

// MockChartRepository provides a mock implementation of ChartRepository
type MockChartRepository struct {
	mock.Mock
}

func (m *MockChartRepository) Create(ctx context.Context, chart *plan.DietChart) error {
	args := m.Called(ctx, chart)
	return args.Error(0)
}

func (m *MockChartRepository) Update(ctx context.Context, chart *plan.DietChart) error {
	args := m.Called(ctx, chart)
	return args.Error(0)
}

func (m *MockChartRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.DietChart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.DietChart), args.Error(1)
}

func (m *MockChartRepository) FindByPatientID(ctx context.Context, patientID string) ([]*plan.DietChart, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plan.DietChart), args.Error(1)
}

func (m *MockChartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCacheRepository provides a mock implementation of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockAIService provides a mock implementation of AIService
type MockAIService struct {
	mock.Mock
}

func (m *MockAIService) GeneratePlan(ctx context.Context, prompt outbound.PlanPrompt) (*outbound.AIPlanResponse, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.AIPlanResponse), args.Error(1)
}
