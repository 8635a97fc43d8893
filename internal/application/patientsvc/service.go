// Package patientsvc provides the application layer for patient profiles.
package patientsvc

import (
	"context"
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/ports/inbound"
	"github.com/nutriveda/planner/internal/ports/outbound"
	"github.com/nutriveda/planner/pkg/errors"
)

// Service implements the patient use cases
type Service struct {
	patientRepo outbound.PatientRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewService creates a new patient service
func NewService(patientRepo outbound.PatientRepository, logger *zap.Logger) inbound.PatientService {
	return &Service{
		patientRepo: patientRepo,
		validate:    validator.New(),
		logger:      logger.Named("patient-service"),
	}
}

// RegisterPatient validates the command and persists a new profile with
// derived BMI and BMR.
func (s *Service) RegisterPatient(ctx context.Context, cmd inbound.RegisterPatientCommand) (*patient.Profile, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := patient.NewProfile(cmd.Name, cmd.Age, patient.Gender(cmd.Gender),
		cmd.HeightCm, cmd.WeightKg, patient.Dosha(cmd.Dosha))
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	habits := patient.DietaryHabit(cmd.DietaryHabits)
	if cmd.DietaryHabits == "" {
		habits = patient.DietNonVegetarian
	}
	p.SetDietaryProfile(habits, cmd.Allergies, cmd.Conditions)
	if cmd.ActivityLevel != "" {
		p.SetActivityLevel(patient.ActivityLevel(cmd.ActivityLevel))
	}
	if cmd.CalorieOverride != nil {
		if err := p.SetCalorieOverride(cmd.CalorieOverride); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := s.patientRepo.Create(ctx, p); err != nil {
		return nil, errors.NewDatabaseError("create patient", err)
	}

	s.logger.Info("Patient registered",
		zap.String("patient_id", p.ID().String()),
		zap.String("dosha", string(p.Dosha())),
		zap.Float64("bmr", p.BMR()),
	)
	return p, nil
}

// UpdatePatient applies the non-nil fields. Any biometric change
// recomputes BMI and BMR.
func (s *Service) UpdatePatient(ctx context.Context, patientID string, cmd inbound.UpdatePatientCommand) (*patient.Profile, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := s.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if cmd.Age != nil || cmd.Gender != nil || cmd.HeightCm != nil || cmd.WeightKg != nil {
		age := p.Age()
		gender := p.Gender()
		height := p.HeightCm()
		weight := p.WeightKg()
		if cmd.Age != nil {
			age = *cmd.Age
		}
		if cmd.Gender != nil {
			gender = patient.Gender(*cmd.Gender)
		}
		if cmd.HeightCm != nil {
			height = *cmd.HeightCm
		}
		if cmd.WeightKg != nil {
			weight = *cmd.WeightKg
		}
		if err := p.UpdateBiometrics(age, gender, height, weight); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if cmd.DietaryHabits != nil || cmd.Allergies != nil || cmd.Conditions != nil {
		habits := p.DietaryHabits()
		if cmd.DietaryHabits != nil {
			habits = patient.DietaryHabit(*cmd.DietaryHabits)
		}
		allergies := p.Allergies()
		if cmd.Allergies != nil {
			allergies = cmd.Allergies
		}
		conditions := p.Conditions()
		if cmd.Conditions != nil {
			conditions = cmd.Conditions
		}
		p.SetDietaryProfile(habits, allergies, conditions)
	}

	if cmd.ActivityLevel != nil {
		p.SetActivityLevel(patient.ActivityLevel(*cmd.ActivityLevel))
	}
	if cmd.CalorieOverride != nil {
		if err := p.SetCalorieOverride(cmd.CalorieOverride); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := s.patientRepo.Update(ctx, p); err != nil {
		return nil, errors.NewDatabaseError("update patient", err)
	}

	s.logger.Info("Patient updated", zap.String("patient_id", patientID))
	return p, nil
}

// GetPatient loads one profile by id
func (s *Service) GetPatient(ctx context.Context, patientID string) (*patient.Profile, error) {
	return s.findPatient(ctx, patientID)
}

// ListPatients pages through profiles
func (s *Service) ListPatients(ctx context.Context, offset, limit int) ([]*patient.Profile, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	patients, total, err := s.patientRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, errors.NewDatabaseError("list patients", err)
	}
	return patients, total, nil
}

// DeletePatient removes one profile by id
func (s *Service) DeletePatient(ctx context.Context, patientID string) error {
	p, err := s.findPatient(ctx, patientID)
	if err != nil {
		return err
	}
	if err := s.patientRepo.Delete(ctx, p.ID()); err != nil {
		return errors.NewDatabaseError("delete patient", err)
	}
	s.logger.Info("Patient deleted", zap.String("patient_id", patientID))
	return nil
}

func (s *Service) findPatient(ctx context.Context, patientID string) (*patient.Profile, error) {
	id, err := uuid.Parse(patientID)
	if err != nil {
		return nil, errors.NewBadRequestError("invalid patient id")
	}
	p, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, outbound.ErrNotFound) {
			return nil, errors.NewPatientNotFoundError(patientID)
		}
		return nil, errors.NewDatabaseError("load patient", err)
	}
	return p, nil
}
