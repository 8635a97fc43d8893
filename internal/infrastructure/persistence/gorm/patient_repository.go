package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/ports/outbound"
)

// PatientRepository implements the patient repository interface using GORM
type PatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) outbound.PatientRepository {
	return &PatientRepository{db: db}
}

// Create creates a new patient profile
func (r *PatientRepository) Create(ctx context.Context, p *patient.Profile) error {
	model := PatientToModel(p)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing patient profile
func (r *PatientRepository) Update(ctx context.Context, p *patient.Profile) error {
	model := PatientToModel(p)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// FindByID finds a patient by ID
func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*patient.Profile, error) {
	var model PatientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	return ModelToPatient(&model), nil
}

// List pages through patient profiles
func (r *PatientRepository) List(ctx context.Context, offset, limit int) ([]*patient.Profile, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&PatientModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []PatientModel
	if err := r.db.WithContext(ctx).Order("created_at").Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	patients := make([]*patient.Profile, len(models))
	for i := range models {
		patients[i] = ModelToPatient(&models[i])
	}
	return patients, total, nil
}

// Delete removes a patient profile
func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PatientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}
