package gorm

import (
	"context"
	"errors"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/ports/outbound"
	"gorm.io/gorm"
)

// FoodRepository implements the food repository interface using GORM
type FoodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(db *gorm.DB) outbound.FoodRepository {
	return &FoodRepository{db: db}
}

// Create creates a new food
func (r *FoodRepository) Create(ctx context.Context, food *catalog.FoodItem) error {
	model := FoodToModel(food)
	return r.db.WithContext(ctx).Create(model).Error
}

// CreateBatch inserts a batch of foods in one statement
func (r *FoodRepository) CreateBatch(ctx context.Context, foods []catalog.FoodItem) error {
	if len(foods) == 0 {
		return nil
	}
	models := make([]*FoodModel, len(foods))
	for i := range foods {
		models[i] = FoodToModel(&foods[i])
	}
	return r.db.WithContext(ctx).Create(models).Error
}

// FindByID finds a food by ID
func (r *FoodRepository) FindByID(ctx context.Context, id string) (*catalog.FoodItem, error) {
	var model FoodModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	food := ModelToFood(&model)
	return &food, nil
}

// FindAll returns the whole catalog in stable order
func (r *FoodRepository) FindAll(ctx context.Context) ([]catalog.FoodItem, error) {
	var models []FoodModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return modelsToFoods(models), nil
}

// FindByCategories returns foods in any of the given categories
func (r *FoodRepository) FindByCategories(ctx context.Context, categories []catalog.Category) ([]catalog.FoodItem, error) {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}

	var models []FoodModel
	if err := r.db.WithContext(ctx).Where("category IN ?", names).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return modelsToFoods(models), nil
}

// SearchByName finds foods whose name contains the query
func (r *FoodRepository) SearchByName(ctx context.Context, query string, limit int) ([]catalog.FoodItem, error) {
	var models []FoodModel
	q := r.db.WithContext(ctx).Where("name LIKE ?", "%"+query+"%").Order("name")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	return modelsToFoods(models), nil
}

func modelsToFoods(models []FoodModel) []catalog.FoodItem {
	foods := make([]catalog.FoodItem, len(models))
	for i := range models {
		foods[i] = ModelToFood(&models[i])
	}
	return foods
}
