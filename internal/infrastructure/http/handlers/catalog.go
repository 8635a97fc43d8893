package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/ports/inbound"
)

// CatalogHandlers handles food catalog requests
type CatalogHandlers struct {
	service inbound.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandlers creates a new catalog handlers instance
func NewCatalogHandlers(service inbound.CatalogService, logger *zap.Logger) *CatalogHandlers {
	return &CatalogHandlers{service: service, logger: logger}
}

// Ingest handles POST /api/v1/foods
func (h *CatalogHandlers) Ingest(c *gin.Context) {
	var cmd inbound.IngestFoodCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	food, err := h.service.IngestFood(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, food)
}

// IngestBatch handles POST /api/v1/foods/batch
func (h *CatalogHandlers) IngestBatch(c *gin.Context) {
	var cmds []inbound.IngestFoodCommand
	if err := c.ShouldBindJSON(&cmds); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if len(cmds) == 0 {
		respondBadRequest(c, "At least one food is required")
		return
	}

	foods, err := h.service.IngestFoods(c.Request.Context(), cmds)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, gin.H{"foods": foods, "count": len(foods)})
}

// Get handles GET /api/v1/foods/:id
func (h *CatalogHandlers) Get(c *gin.Context) {
	food, err := h.service.GetFood(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, food)
}

// Search handles GET /api/v1/foods/search?q=...&limit=...
func (h *CatalogHandlers) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondBadRequest(c, "Query parameter q is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	foods, err := h.service.SearchFoods(c.Request.Context(), query, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{"foods": foods, "count": len(foods)})
}

// List handles GET /api/v1/foods
func (h *CatalogHandlers) List(c *gin.Context) {
	foods, err := h.service.ListFoods(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{"foods": foods, "count": len(foods)})
}
