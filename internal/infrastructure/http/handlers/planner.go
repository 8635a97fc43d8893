package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/domain/plan"
	"github.com/nutriveda/planner/internal/ports/inbound"
)

// PlannerHandlers handles diet plan generation and food recommendation
// requests.
type PlannerHandlers struct {
	service inbound.PlannerService
	logger  *zap.Logger
}

// NewPlannerHandlers creates a new planner handlers instance
func NewPlannerHandlers(service inbound.PlannerService, logger *zap.Logger) *PlannerHandlers {
	return &PlannerHandlers{service: service, logger: logger}
}

// GeneratePlan handles POST /api/v1/patients/:id/diet-plan
func (h *PlannerHandlers) GeneratePlan(c *gin.Context) {
	var opts inbound.PlanOptions
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			respondBadRequest(c, "Invalid request body")
			return
		}
	}

	start := time.Now()
	dietPlan, err := h.service.GenerateDietPlan(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("Diet plan generated",
		zap.String("patient_id", c.Param("id")),
		zap.Int("days", len(dietPlan.Days)),
		zap.String("source", string(dietPlan.Source)),
		zap.Duration("duration", time.Since(start)),
	)
	respondOK(c, dietPlan)
}

// SuitableFoods handles GET /api/v1/patients/:id/suitable-foods
func (h *PlannerHandlers) SuitableFoods(c *gin.Context) {
	foods, err := h.service.GetSuitableFoods(c.Request.Context(), c.Param("id"), c.Query("season"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{"foods": foods, "count": len(foods)})
}

// Suggestions handles GET /api/v1/patients/:id/suggestions?hour=...
func (h *PlannerHandlers) Suggestions(c *gin.Context) {
	hourParam := c.DefaultQuery("hour", strconv.Itoa(time.Now().Hour()))
	hour, err := strconv.Atoi(hourParam)
	if err != nil {
		respondBadRequest(c, "Invalid hour parameter")
		return
	}

	result, err := h.service.SuggestFoods(c.Request.Context(), c.Param("id"), hour, c.Query("season"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, result)
}

// analyzeMealRequest carries the input for meal set analysis
type analyzeMealRequest struct {
	Items []plan.MealItem `json:"items"`
}

// AnalyzeMeals handles POST /api/v1/patients/:id/meal-analysis and the
// anonymous POST /api/v1/meal-analysis, where no patient id is bound.
func (h *PlannerHandlers) AnalyzeMeals(c *gin.Context) {
	var req analyzeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if len(req.Items) == 0 {
		respondBadRequest(c, "At least one meal item is required")
		return
	}

	analysis, err := h.service.AnalyzeMealSet(c.Request.Context(), c.Param("id"), req.Items)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, analysis)
}
