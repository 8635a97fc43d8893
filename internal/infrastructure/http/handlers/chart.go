package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/domain/plan"
	"github.com/nutriveda/planner/internal/ports/inbound"
)

// ChartHandlers handles diet chart record requests
type ChartHandlers struct {
	service inbound.ChartService
	logger  *zap.Logger
}

// NewChartHandlers creates a new chart handlers instance
func NewChartHandlers(service inbound.ChartService, logger *zap.Logger) *ChartHandlers {
	return &ChartHandlers{service: service, logger: logger}
}

// ChartResponse is the JSON shape of a saved diet chart
type ChartResponse struct {
	ID           string                `json:"id"`
	PatientID    string                `json:"patientId"`
	Name         string                `json:"name"`
	Status       string                `json:"status"`
	Goals        []string              `json:"goals"`
	Dietitian    string                `json:"dietitian,omitempty"`
	Meals        []plan.ChartMeal      `json:"meals"`
	Nutrition    plan.Nutrition        `json:"nutrition"`
	Balance      plan.AyurvedicBalance `json:"ayurvedicBalance"`
	PrimaryDosha string                `json:"primaryDosha"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func toChartResponse(c *plan.DietChart) ChartResponse {
	return ChartResponse{
		ID:           c.ID().String(),
		PatientID:    c.PatientID(),
		Name:         c.Name(),
		Status:       string(c.Status()),
		Goals:        c.Goals(),
		Dietitian:    c.Dietitian(),
		Meals:        c.Meals(),
		Nutrition:    c.Nutrition(),
		Balance:      c.Balance(),
		PrimaryDosha: c.PrimaryDosha(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

// Create handles POST /api/v1/charts
func (h *ChartHandlers) Create(c *gin.Context) {
	var cmd inbound.CreateChartCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	chart, err := h.service.CreateChart(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, toChartResponse(chart))
}

// Get handles GET /api/v1/charts/:id
func (h *ChartHandlers) Get(c *gin.Context) {
	chart, err := h.service.GetChart(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, toChartResponse(chart))
}

// ListByPatient handles GET /api/v1/patients/:id/charts
func (h *ChartHandlers) ListByPatient(c *gin.Context) {
	charts, err := h.service.ListChartsByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]ChartResponse, len(charts))
	for i, chart := range charts {
		items[i] = toChartResponse(chart)
	}
	respondOK(c, gin.H{"charts": items, "count": len(items)})
}

// Update handles PUT /api/v1/charts/:id
func (h *ChartHandlers) Update(c *gin.Context) {
	var cmd inbound.UpdateChartCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	chart, err := h.service.UpdateChart(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, toChartResponse(chart))
}

// Delete handles DELETE /api/v1/charts/:id
func (h *ChartHandlers) Delete(c *gin.Context) {
	if err := h.service.DeleteChart(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondMessage(c, "Diet chart deleted")
}
