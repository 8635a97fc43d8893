package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/ports/inbound"
)

// PatientHandlers handles patient profile requests
type PatientHandlers struct {
	service inbound.PatientService
	logger  *zap.Logger
}

// NewPatientHandlers creates a new patient handlers instance
func NewPatientHandlers(service inbound.PatientService, logger *zap.Logger) *PatientHandlers {
	return &PatientHandlers{service: service, logger: logger}
}

// PatientResponse is the JSON shape of a patient profile
type PatientResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Gender          string    `json:"gender"`
	HeightCm        float64   `json:"heightCm"`
	WeightKg        float64   `json:"weightKg"`
	BMI             float64   `json:"bmi"`
	BMR             float64   `json:"bmr"`
	Dosha           string    `json:"dosha"`
	DietaryHabits   string    `json:"dietaryHabits"`
	Allergies       []string  `json:"allergies"`
	Conditions      []string  `json:"conditions"`
	ActivityLevel   string    `json:"activityLevel"`
	CalorieOverride *float64  `json:"calorieOverride,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toPatientResponse(p *patient.Profile) PatientResponse {
	return PatientResponse{
		ID:              p.ID().String(),
		Name:            p.Name(),
		Age:             p.Age(),
		Gender:          string(p.Gender()),
		HeightCm:        p.HeightCm(),
		WeightKg:        p.WeightKg(),
		BMI:             p.BMI(),
		BMR:             p.BMR(),
		Dosha:           string(p.Dosha()),
		DietaryHabits:   string(p.DietaryHabits()),
		Allergies:       p.Allergies(),
		Conditions:      p.Conditions(),
		ActivityLevel:   string(p.ActivityLevel()),
		CalorieOverride: p.CalorieOverride(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

// Register handles POST /api/v1/patients
func (h *PatientHandlers) Register(c *gin.Context) {
	var cmd inbound.RegisterPatientCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.RegisterPatient(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, toPatientResponse(p))
}

// Get handles GET /api/v1/patients/:id
func (h *PatientHandlers) Get(c *gin.Context) {
	p, err := h.service.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, toPatientResponse(p))
}

// List handles GET /api/v1/patients
func (h *PatientHandlers) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	patients, total, err := h.service.ListPatients(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]PatientResponse, len(patients))
	for i, p := range patients {
		items[i] = toPatientResponse(p)
	}
	respondOK(c, gin.H{"patients": items, "total": total, "offset": offset, "limit": limit})
}

// Update handles PUT /api/v1/patients/:id
func (h *PatientHandlers) Update(c *gin.Context) {
	var cmd inbound.UpdatePatientCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.UpdatePatient(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, toPatientResponse(p))
}

// Delete handles DELETE /api/v1/patients/:id
func (h *PatientHandlers) Delete(c *gin.Context) {
	if err := h.service.DeletePatient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondMessage(c, "Patient deleted")
}
