// Package server provides the JSON API HTTP server
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/infrastructure/config"
	"github.com/nutriveda/planner/internal/infrastructure/http/handlers"
	"github.com/nutriveda/planner/internal/infrastructure/http/middleware"
	"github.com/nutriveda/planner/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	engine *gin.Engine
	server *http.Server

	patientService inbound.PatientService
	catalogService inbound.CatalogService
	plannerService inbound.PlannerService
	chartService   inbound.ChartService
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	patientService inbound.PatientService,
	catalogService inbound.CatalogService,
	plannerService inbound.PlannerService,
	chartService inbound.ChartService,
) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:         cfg,
		logger:         logger,
		patientService: patientService,
		catalogService: catalogService,
		plannerService: plannerService,
		chartService:   chartService,
	}

	s.engine = s.setupRouter()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRouter configures the router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()

	if len(s.config.Server.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(s.config.Server.TrustedProxies); err != nil {
			s.logger.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Recovery(s.logger))
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}

	r.GET("/health", s.handleHealthCheck)

	api := r.Group("/api/v1")
	s.setupAPIRoutes(api)

	return r
}

// setupAPIRoutes configures API v1 endpoints
func (s *Server) setupAPIRoutes(r *gin.RouterGroup) {
	patientH := handlers.NewPatientHandlers(s.patientService, s.logger)
	catalogH := handlers.NewCatalogHandlers(s.catalogService, s.logger)
	plannerH := handlers.NewPlannerHandlers(s.plannerService, s.logger)
	chartH := handlers.NewChartHandlers(s.chartService, s.logger)

	patients := r.Group("/patients")
	{
		patients.POST("", patientH.Register)
		patients.GET("", patientH.List)
		patients.GET("/:id", patientH.Get)
		patients.PUT("/:id", patientH.Update)
		patients.DELETE("/:id", patientH.Delete)

		patients.POST("/:id/diet-plan", plannerH.GeneratePlan)
		patients.GET("/:id/suitable-foods", plannerH.SuitableFoods)
		patients.GET("/:id/suggestions", plannerH.Suggestions)
		patients.POST("/:id/meal-analysis", plannerH.AnalyzeMeals)
		patients.GET("/:id/charts", chartH.ListByPatient)
	}

	foods := r.Group("/foods")
	{
		foods.POST("", catalogH.Ingest)
		foods.POST("/batch", catalogH.IngestBatch)
		foods.GET("", catalogH.List)
		foods.GET("/search", catalogH.Search)
		foods.GET("/:id", catalogH.Get)
	}

	charts := r.Group("/charts")
	{
		charts.POST("", chartH.Create)
		charts.GET("/:id", chartH.Get)
		charts.PUT("/:id", chartH.Update)
		charts.DELETE("/:id", chartH.Delete)
	}

	// Anonymous variant: grades the items against the default dosha.
	r.POST("/meal-analysis", plannerH.AnalyzeMeals)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// handleHealthCheck provides the health check endpoint
func (s *Server) handleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   s.config.App.Name,
		"version":   s.config.App.Version,
		"timestamp": time.Now().Unix(),
	})
}
