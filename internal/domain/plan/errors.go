package plan

import "errors"

// Domain errors for diet plans and charts

var (
	ErrPatientIDRequired  = errors.New("patient id is required")
	ErrMealsRequired      = errors.New("at least one meal is required")
	ErrInvalidChartStatus = errors.New("unknown chart status")
)
