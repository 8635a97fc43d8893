package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriveda/planner/internal/domain/plan"
	"github.com/nutriveda/planner/internal/ports/outbound"
)

// ChartRepository implements the diet chart repository interface using GORM
type ChartRepository struct {
	db *gorm.DB
}

// NewChartRepository creates a new chart repository
func NewChartRepository(db *gorm.DB) outbound.ChartRepository {
	return &ChartRepository{db: db}
}

// Create creates a new diet chart
func (r *ChartRepository) Create(ctx context.Context, c *plan.DietChart) error {
	model, err := ChartToModel(c)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing diet chart
func (r *ChartRepository) Update(ctx context.Context, c *plan.DietChart) error {
	model, err := ChartToModel(c)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// FindByID finds a diet chart by ID
func (r *ChartRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.DietChart, error) {
	var model ChartModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	return ModelToChart(&model)
}

// FindByPatientID returns every chart for one patient, oldest first
func (r *ChartRepository) FindByPatientID(ctx context.Context, patientID string) ([]*plan.DietChart, error) {
	var models []ChartModel
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}

	charts := make([]*plan.DietChart, len(models))
	for i := range models {
		c, err := ModelToChart(&models[i])
		if err != nil {
			return nil, err
		}
		charts[i] = c
	}
	return charts, nil
}

// Delete removes a diet chart
func (r *ChartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ChartModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}
