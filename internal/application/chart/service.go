// Package chart provides the application layer for diet chart records.
package chart

import (
	"context"
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/domain/plan"
	"github.com/nutriveda/planner/internal/ports/inbound"
	"github.com/nutriveda/planner/internal/ports/outbound"
	"github.com/nutriveda/planner/pkg/errors"
)

// Service implements the diet chart use cases
type Service struct {
	chartRepo   outbound.ChartRepository
	patientRepo outbound.PatientRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewService creates a new chart service
func NewService(
	chartRepo outbound.ChartRepository,
	patientRepo outbound.PatientRepository,
	logger *zap.Logger,
) inbound.ChartService {
	return &Service{
		chartRepo:   chartRepo,
		patientRepo: patientRepo,
		validate:    validator.New(),
		logger:      logger.Named("chart-service"),
	}
}

// CreateChart validates the command, grades the meals against the
// patient's dosha and persists the chart.
func (s *Service) CreateChart(ctx context.Context, cmd inbound.CreateChartCommand) (*plan.DietChart, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	patientID, err := uuid.Parse(cmd.PatientID)
	if err != nil {
		return nil, errors.NewBadRequestError("invalid patient id")
	}
	p, err := s.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		if stderrors.Is(err, outbound.ErrNotFound) {
			return nil, errors.NewPatientNotFoundError(cmd.PatientID)
		}
		return nil, errors.NewDatabaseError("load patient", err)
	}

	c, err := plan.NewDietChart(cmd.PatientID, cmd.Name, cmd.Meals, p.Dosha().Primary())
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	c.SetMetadata(cmd.Name, cmd.Goals, cmd.Dietitian)

	if err := s.chartRepo.Create(ctx, c); err != nil {
		return nil, errors.NewDatabaseError("create diet chart", err)
	}

	s.logger.Info("Diet chart created",
		zap.String("chart_id", c.ID().String()),
		zap.String("patient_id", cmd.PatientID),
		zap.Int("meals", len(cmd.Meals)),
		zap.Int("balance_score", c.Balance().BalanceScore),
	)
	return c, nil
}

// UpdateChart applies the non-nil fields of the command. Meal changes
// trigger recomputation of nutrition totals and the balance summary.
func (s *Service) UpdateChart(ctx context.Context, chartID string, cmd inbound.UpdateChartCommand) (*plan.DietChart, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	c, err := s.findChart(ctx, chartID)
	if err != nil {
		return nil, err
	}

	if cmd.Meals != nil {
		if err := c.ReplaceMeals(cmd.Meals); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	name := ""
	if cmd.Name != nil {
		name = *cmd.Name
	}
	dietitian := ""
	if cmd.Dietitian != nil {
		dietitian = *cmd.Dietitian
	}
	c.SetMetadata(name, cmd.Goals, dietitian)

	if cmd.Status != nil {
		if err := c.SetStatus(plan.ChartStatus(*cmd.Status)); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := s.chartRepo.Update(ctx, c); err != nil {
		return nil, errors.NewDatabaseError("update diet chart", err)
	}

	s.logger.Info("Diet chart updated", zap.String("chart_id", chartID))
	return c, nil
}

// GetChart loads one chart by id
func (s *Service) GetChart(ctx context.Context, chartID string) (*plan.DietChart, error) {
	return s.findChart(ctx, chartID)
}

// ListChartsByPatient loads every chart belonging to a patient
func (s *Service) ListChartsByPatient(ctx context.Context, patientID string) ([]*plan.DietChart, error) {
	if _, err := uuid.Parse(patientID); err != nil {
		return nil, errors.NewBadRequestError("invalid patient id")
	}
	charts, err := s.chartRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, errors.NewDatabaseError("list diet charts", err)
	}
	return charts, nil
}

// DeleteChart removes one chart by id
func (s *Service) DeleteChart(ctx context.Context, chartID string) error {
	c, err := s.findChart(ctx, chartID)
	if err != nil {
		return err
	}
	if err := s.chartRepo.Delete(ctx, c.ID()); err != nil {
		return errors.NewDatabaseError("delete diet chart", err)
	}
	s.logger.Info("Diet chart deleted", zap.String("chart_id", chartID))
	return nil
}

func (s *Service) findChart(ctx context.Context, chartID string) (*plan.DietChart, error) {
	id, err := uuid.Parse(chartID)
	if err != nil {
		return nil, errors.NewBadRequestError("invalid chart id")
	}
	c, err := s.chartRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, outbound.ErrNotFound) {
			return nil, errors.NewChartNotFoundError(chartID)
		}
		return nil, errors.NewDatabaseError("load diet chart", err)
	}
	return c, nil
}
