package inbound

import (
	"context"

	"github.com/nutriveda/planner/internal/domain/plan"
)

// CreateChartCommand carries the input for chart creation
type CreateChartCommand struct {
	PatientID string           `json:"patientId" validate:"required"`
	Name      string           `json:"name"`
	Goals     []string         `json:"goals"`
	Dietitian string           `json:"dietitian"`
	Meals     []plan.ChartMeal `json:"meals" validate:"required,min=1,dive"`
}

// UpdateChartCommand carries the input for chart mutation. Nil fields
// leave the stored value untouched.
type UpdateChartCommand struct {
	Name      *string          `json:"name"`
	Goals     []string         `json:"goals"`
	Dietitian *string          `json:"dietitian"`
	Status    *string          `json:"status"`
	Meals     []plan.ChartMeal `json:"meals" validate:"omitempty,min=1,dive"`
}

// ChartService manages saved diet chart records
type ChartService interface {
	CreateChart(ctx context.Context, cmd CreateChartCommand) (*plan.DietChart, error)
	UpdateChart(ctx context.Context, chartID string, cmd UpdateChartCommand) (*plan.DietChart, error)
	GetChart(ctx context.Context, chartID string) (*plan.DietChart, error)
	ListChartsByPatient(ctx context.Context, patientID string) ([]*plan.DietChart, error)
	DeleteChart(ctx context.Context, chartID string) error
}
