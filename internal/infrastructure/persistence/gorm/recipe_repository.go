package gorm

import (
	"context"
	"errors"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(ctx context.Context, recipe *catalog.RecipeItem) error {
	model := RecipeToModel(recipe)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a recipe by ID
func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*catalog.RecipeItem, error) {
	var model RecipeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	recipe := ModelToRecipe(&model)
	return &recipe, nil
}

// FindByMealType finds recipes for one meal type
func (r *RecipeRepository) FindByMealType(ctx context.Context, mealType catalog.MealType, limit int) ([]catalog.RecipeItem, error) {
	var models []RecipeModel
	query := r.db.WithContext(ctx).Where("meal_type = ?", string(mealType)).Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	recipes := make([]catalog.RecipeItem, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}

// FindAll returns every recipe
func (r *RecipeRepository) FindAll(ctx context.Context) ([]catalog.RecipeItem, error) {
	var models []RecipeModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	recipes := make([]catalog.RecipeItem, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}
