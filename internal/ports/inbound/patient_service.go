package inbound

import (
	"context"

	"github.com/nutriveda/planner/internal/domain/patient"
)

// RegisterPatientCommand carries the input for patient registration
type RegisterPatientCommand struct {
	Name            string   `json:"name" validate:"required,min=2,max=100"`
	Age             int      `json:"age" validate:"min=0,max=150"`
	Gender          string   `json:"gender" validate:"required,oneof=male female other"`
	HeightCm        float64  `json:"heightCm" validate:"required,min=50,max=300"`
	WeightKg        float64  `json:"weightKg" validate:"required,min=10,max=500"`
	Dosha           string   `json:"dosha" validate:"required"`
	DietaryHabits   string   `json:"dietaryHabits"`
	Allergies       []string `json:"allergies"`
	Conditions      []string `json:"conditions"`
	ActivityLevel   string   `json:"activityLevel"`
	CalorieOverride *float64 `json:"calorieOverride" validate:"omitempty,gt=0"`
}

// UpdatePatientCommand carries the input for profile updates. Nil fields
// leave the stored value untouched.
type UpdatePatientCommand struct {
	Age             *int     `json:"age" validate:"omitempty,min=0,max=150"`
	Gender          *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	HeightCm        *float64 `json:"heightCm" validate:"omitempty,min=50,max=300"`
	WeightKg        *float64 `json:"weightKg" validate:"omitempty,min=10,max=500"`
	DietaryHabits   *string  `json:"dietaryHabits"`
	Allergies       []string `json:"allergies"`
	Conditions      []string `json:"conditions"`
	ActivityLevel   *string  `json:"activityLevel"`
	CalorieOverride *float64 `json:"calorieOverride" validate:"omitempty,gt=0"`
}

// PatientService manages patient profiles
type PatientService interface {
	RegisterPatient(ctx context.Context, cmd RegisterPatientCommand) (*patient.Profile, error)
	UpdatePatient(ctx context.Context, patientID string, cmd UpdatePatientCommand) (*patient.Profile, error)
	GetPatient(ctx context.Context, patientID string) (*patient.Profile, error)
	ListPatients(ctx context.Context, offset, limit int) ([]*patient.Profile, int64, error)
	DeletePatient(ctx context.Context, patientID string) error
}
