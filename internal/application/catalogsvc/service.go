// Package catalogsvc provides the application layer for the food and
// recipe knowledge base.
package catalogsvc

import (
	"context"
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/ports/inbound"
	"github.com/nutriveda/planner/internal/ports/outbound"
	"github.com/nutriveda/planner/pkg/errors"
)

// Service implements the catalog use cases
type Service struct {
	foodRepo outbound.FoodRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a new catalog service
func NewService(foodRepo outbound.FoodRepository, logger *zap.Logger) inbound.CatalogService {
	return &Service{
		foodRepo: foodRepo,
		validate: validator.New(),
		logger:   logger.Named("catalog-service"),
	}
}

// IngestFood validates, defaults and persists one food
func (s *Service) IngestFood(ctx context.Context, cmd inbound.IngestFoodCommand) (*catalog.FoodItem, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	f := commandToFood(cmd)
	if err := s.foodRepo.Create(ctx, &f); err != nil {
		return nil, errors.NewDatabaseError("create food", err)
	}

	s.logger.Info("Food ingested",
		zap.String("food_id", f.ID),
		zap.String("name", f.Name),
		zap.String("category", string(f.Category)),
	)
	return &f, nil
}

// IngestFoods validates and persists a batch. The batch is rejected as a
// whole when any command fails validation.
func (s *Service) IngestFoods(ctx context.Context, cmds []inbound.IngestFoodCommand) ([]catalog.FoodItem, error) {
	if len(cmds) == 0 {
		return nil, errors.NewBadRequestError("no foods to ingest")
	}

	foods := make([]catalog.FoodItem, 0, len(cmds))
	for i, cmd := range cmds {
		if err := s.validate.Struct(cmd); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithMetadata("index", i)
		}
		foods = append(foods, commandToFood(cmd))
	}

	if err := s.foodRepo.CreateBatch(ctx, foods); err != nil {
		return nil, errors.NewDatabaseError("create food batch", err)
	}

	s.logger.Info("Food batch ingested", zap.Int("count", len(foods)))
	return foods, nil
}

// GetFood loads one food by id
func (s *Service) GetFood(ctx context.Context, foodID string) (*catalog.FoodItem, error) {
	f, err := s.foodRepo.FindByID(ctx, foodID)
	if err != nil {
		if stderrors.Is(err, outbound.ErrNotFound) {
			return nil, errors.NewAppError(errors.CodeFoodNotFound, "Food not found", foodID)
		}
		return nil, errors.NewDatabaseError("load food", err)
	}
	return f, nil
}

// SearchFoods finds foods by name substring
func (s *Service) SearchFoods(ctx context.Context, query string, limit int) ([]catalog.FoodItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	foods, err := s.foodRepo.SearchByName(ctx, query, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("search foods", err)
	}
	return foods, nil
}

// ListFoods returns the whole catalog
func (s *Service) ListFoods(ctx context.Context) ([]catalog.FoodItem, error) {
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list foods", err)
	}
	return foods, nil
}

// commandToFood maps the command onto a food item with defaults applied.
func commandToFood(cmd inbound.IngestFoodCommand) catalog.FoodItem {
	f := catalog.FoodItem{
		ID:        uuid.NewString(),
		Name:      cmd.Name,
		Category:  catalog.Category(cmd.Category),
		Calories:  cmd.Calories,
		Protein:   cmd.Protein,
		Carbs:     cmd.Carbs,
		Fat:       cmd.Fat,
		Fiber:     cmd.Fiber,
		Sugar:     cmd.Sugar,
		Sodium:    cmd.Sodium,
		Rasa:      catalog.Rasa(cmd.Rasa),
		Virya:     catalog.Virya(cmd.Virya),
		Guna:      cmd.Guna,
		Vipaka:    catalog.Vipaka(cmd.Vipaka),
		Season:    cmd.Season,
		Region:    cmd.Region,
		Allergens: cmd.Allergens,
	}
	if cmd.DoshaImpact != nil {
		f.DoshaImpact = *cmd.DoshaImpact
	}
	f.ApplyDefaults()
	return f
}
