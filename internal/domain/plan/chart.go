package plan

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChartStatus is the lifecycle state of a diet chart
type ChartStatus string

const (
	ChartStatusDraft     ChartStatus = "draft"
	ChartStatusActive    ChartStatus = "active"
	ChartStatusCompleted ChartStatus = "completed"
	ChartStatusArchived  ChartStatus = "archived"
)

// Valid reports whether the status is a known value
func (s ChartStatus) Valid() bool {
	switch s {
	case ChartStatusDraft, ChartStatusActive, ChartStatusCompleted, ChartStatusArchived:
		return true
	}
	return false
}

// ChartMeal is one named meal inside a saved chart
type ChartMeal struct {
	Name          string     `json:"name"`
	Time          string     `json:"time,omitempty"`
	Items         []MealItem `json:"items"`
	Instructions  string     `json:"instructions,omitempty"`
	TotalCalories float64    `json:"totalCalories"`
}

// DietChart is a saved, dietitian-managed record of prescribed meals for
// a patient. Nutrition totals and the Ayurvedic balance are derived from
// the meals and recomputed on every mutation.
type DietChart struct {
	id        uuid.UUID
	patientID string
	name      string
	status    ChartStatus
	goals     []string
	dietitian string

	meals     []ChartMeal
	nutrition Nutrition
	balance   AyurvedicBalance

	primaryDosha string

	createdAt time.Time
	updatedAt time.Time
}

// NewDietChart creates a chart for a patient and derives its totals.
// primaryDosha is the patient's primary dosha at creation time and is
// captured so later recomputation stays consistent.
func NewDietChart(patientID, name string, meals []ChartMeal, primaryDosha string) (*DietChart, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, ErrPatientIDRequired
	}
	if len(meals) == 0 {
		return nil, ErrMealsRequired
	}
	if strings.TrimSpace(name) == "" {
		name = "Diet Chart"
	}

	now := time.Now()
	c := &DietChart{
		id:           uuid.New(),
		patientID:    patientID,
		name:         name,
		status:       ChartStatusDraft,
		meals:        meals,
		primaryDosha: primaryDosha,
		createdAt:    now,
		updatedAt:    now,
	}
	c.recompute()
	return c, nil
}

// RestoreChart rebuilds a chart from persisted state, recomputing the
// derived totals instead of trusting stored values.
func RestoreChart(id uuid.UUID, patientID, name string, status ChartStatus, goals []string,
	dietitian string, meals []ChartMeal, primaryDosha string, createdAt, updatedAt time.Time) *DietChart {
	c := &DietChart{
		id:           id,
		patientID:    patientID,
		name:         name,
		status:       status,
		goals:        goals,
		dietitian:    dietitian,
		meals:        meals,
		primaryDosha: primaryDosha,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	c.recompute()
	return c
}

// ID returns the chart's unique identifier
func (c *DietChart) ID() uuid.UUID { return c.id }

// PatientID returns the owning patient's identifier
func (c *DietChart) PatientID() string { return c.patientID }

// Name returns the chart's display name
func (c *DietChart) Name() string { return c.name }

// Status returns the chart's lifecycle state
func (c *DietChart) Status() ChartStatus { return c.status }

// Goals returns the dietitian-set goals
func (c *DietChart) Goals() []string { return c.goals }

// Dietitian returns the name of the prescribing dietitian
func (c *DietChart) Dietitian() string { return c.dietitian }

// Meals returns the prescribed meals
func (c *DietChart) Meals() []ChartMeal { return c.meals }

// Nutrition returns the derived daily nutrition totals
func (c *DietChart) Nutrition() Nutrition { return c.nutrition }

// Balance returns the derived Ayurvedic balance summary
func (c *DietChart) Balance() AyurvedicBalance { return c.balance }

// PrimaryDosha returns the dosha the balance score is graded against
func (c *DietChart) PrimaryDosha() string { return c.primaryDosha }

// CreatedAt returns when the chart was created
func (c *DietChart) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the chart was last modified
func (c *DietChart) UpdatedAt() time.Time { return c.updatedAt }

// ReplaceMeals swaps the chart's meals and recomputes every derived value
func (c *DietChart) ReplaceMeals(meals []ChartMeal) error {
	if len(meals) == 0 {
		return ErrMealsRequired
	}
	c.meals = meals
	c.recompute()
	c.updatedAt = time.Now()
	return nil
}

// SetMetadata updates the chart's descriptive fields
func (c *DietChart) SetMetadata(name string, goals []string, dietitian string) {
	if strings.TrimSpace(name) != "" {
		c.name = name
	}
	if goals != nil {
		c.goals = goals
	}
	if strings.TrimSpace(dietitian) != "" {
		c.dietitian = dietitian
	}
	c.updatedAt = time.Now()
}

// SetStatus transitions the chart's lifecycle state
func (c *DietChart) SetStatus(status ChartStatus) error {
	if !status.Valid() {
		return ErrInvalidChartStatus
	}
	c.status = status
	c.updatedAt = time.Now()
	return nil
}

// recompute refreshes per-meal calorie totals, the overall nutrition
// aggregate and the Ayurvedic balance from the current meals.
func (c *DietChart) recompute() {
	var all []MealItem
	for i := range c.meals {
		total := 0.0
		for _, it := range c.meals[i].Items {
			total += it.Calories()
		}
		c.meals[i].TotalCalories = round2(total)
		all = append(all, c.meals[i].Items...)
	}
	c.nutrition = TotalNutrition(all)
	c.balance = ComputeBalance(all, c.primaryDosha)
}
