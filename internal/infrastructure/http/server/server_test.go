package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nutriveda/planner/internal/application/catalogsvc"
	"github.com/nutriveda/planner/internal/application/chart"
	"github.com/nutriveda/planner/internal/application/patientsvc"
	"github.com/nutriveda/planner/internal/application/planner"
	"github.com/nutriveda/planner/internal/infrastructure/config"
	httpserver "github.com/nutriveda/planner/internal/infrastructure/http/server"
	"github.com/nutriveda/planner/internal/infrastructure/persistence/memory"
	"github.com/nutriveda/planner/pkg/logger"
)

type ServerTestSuite struct {
	suite.Suite
	handler http.Handler
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	cfg := &config.Config{
		App:    config.AppConfig{Name: "planner-test", Version: "test", Environment: "test"},
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
	}
	log := logger.NewNop()

	patientRepo := memory.NewPatientRepository()
	foodRepo := memory.NewFoodRepository()
	recipeRepo := memory.NewRecipeRepository()
	chartRepo := memory.NewChartRepository()
	cache := memory.NewCacheRepository()

	srv := httpserver.NewServer(cfg, log,
		patientsvc.NewService(patientRepo, log),
		catalogsvc.NewService(foodRepo, log),
		planner.NewService(planner.DefaultConfig(), patientRepo, foodRepo, recipeRepo, cache, nil, log),
		chart.NewService(chartRepo, patientRepo, log),
	)
	s.handler = srv.Handler()
}

func (s *ServerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ServerTestSuite) registerPatient() string {
	rec := s.request(http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name":     "Asha Rao",
		"age":      30,
		"gender":   "female",
		"heightCm": 160,
		"weightKg": 55,
		"dosha":    "pitta",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	data := s.decode(rec)["data"].(map[string]interface{})
	return data["id"].(string)
}

func (s *ServerTestSuite) ingestFoods() {
	foods := []map[string]interface{}{
		{"name": "Oats Porridge", "category": "breakfast", "calories": 150, "protein": 5},
		{"name": "Vegetable Khichdi", "category": "main-course", "calories": 250, "protein": 9},
		{"name": "Steamed Greens", "category": "vegetables", "calories": 80, "fiber": 4},
		{"name": "Apple", "category": "fruits", "calories": 95},
		{"name": "Roasted Chana", "category": "snacks", "calories": 120, "protein": 7},
	}
	rec := s.request(http.MethodPost, "/api/v1/foods/batch", foods)
	s.Require().Equal(http.StatusCreated, rec.Code)
}

func (s *ServerTestSuite) TestHealthCheck_ShouldReportHealthy() {
	rec := s.request(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("healthy", s.decode(rec)["status"])
}

func (s *ServerTestSuite) TestRegisterPatient_ShouldReturnDerivedValues() {
	rec := s.request(http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name":     "Asha Rao",
		"age":      30,
		"gender":   "female",
		"heightCm": 160,
		"weightKg": 55,
		"dosha":    "pitta",
	})

	s.Require().Equal(http.StatusCreated, rec.Code)
	data := s.decode(rec)["data"].(map[string]interface{})
	s.Equal(1239.0, data["bmr"])
	s.Equal(21.48, data["bmi"])
}

func (s *ServerTestSuite) TestRegisterPatient_ShouldRejectInvalidBody() {
	rec := s.request(http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name": "X",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestGeneratePlan_ShouldReturnFallbackPlan() {
	id := s.registerPatient()
	s.ingestFoods()

	rec := s.request(http.MethodPost, "/api/v1/patients/"+id+"/diet-plan",
		map[string]interface{}{"days": 2})

	s.Require().Equal(http.StatusOK, rec.Code)
	data := s.decode(rec)["data"].(map[string]interface{})
	s.Equal("fallback", data["source"])
	s.Len(data["days"], 2)
}

func (s *ServerTestSuite) TestGeneratePlan_ShouldReturnNotFoundForUnknownPatient() {
	rec := s.request(http.MethodPost,
		"/api/v1/patients/00000000-0000-0000-0000-000000000000/diet-plan", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("PATIENT_NOT_FOUND", s.decode(rec)["code"])
}

func (s *ServerTestSuite) TestSuitableFoods_ShouldReturnRankedCatalog() {
	id := s.registerPatient()
	s.ingestFoods()

	rec := s.request(http.MethodGet, "/api/v1/patients/"+id+"/suitable-foods", nil)

	s.Require().Equal(http.StatusOK, rec.Code)
	data := s.decode(rec)["data"].(map[string]interface{})
	s.Equal(float64(5), data["count"])
}

func (s *ServerTestSuite) TestSuggestions_ShouldRejectInvalidHour() {
	id := s.registerPatient()

	rec := s.request(http.MethodGet, "/api/v1/patients/"+id+"/suggestions?hour=bad", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestAnalyzeMeals_ShouldAcceptAnonymousRequest() {
	rec := s.request(http.MethodPost, "/api/v1/meal-analysis", map[string]interface{}{
		"items": []map[string]interface{}{
			{"food": map[string]interface{}{"name": "rice", "calories": 130, "rasa": "sweet"}, "quantity": 1},
		},
	})

	s.Require().Equal(http.StatusOK, rec.Code)
	data := s.decode(rec)["data"].(map[string]interface{})
	nutrition := data["nutrition"].(map[string]interface{})
	s.Equal(130.0, nutrition["calories"])
	balance := data["ayurvedicBalance"].(map[string]interface{})
	s.Len(balance["rasaDistribution"], 6)
}

func (s *ServerTestSuite) TestChartLifecycle_ShouldCreateFetchAndDelete() {
	id := s.registerPatient()

	createRec := s.request(http.MethodPost, "/api/v1/charts", map[string]interface{}{
		"patientId": id,
		"name":      "Week 1",
		"meals": []map[string]interface{}{
			{
				"name": "Lunch",
				"items": []map[string]interface{}{
					{"food": map[string]interface{}{"name": "rice", "calories": 130}, "quantity": 1},
				},
			},
		},
	})
	s.Require().Equal(http.StatusCreated, createRec.Code)
	created := s.decode(createRec)["data"].(map[string]interface{})
	chartID := created["id"].(string)
	s.Equal("draft", created["status"])

	getRec := s.request(http.MethodGet, "/api/v1/charts/"+chartID, nil)
	s.Require().Equal(http.StatusOK, getRec.Code)

	listRec := s.request(http.MethodGet, "/api/v1/patients/"+id+"/charts", nil)
	s.Require().Equal(http.StatusOK, listRec.Code)
	listData := s.decode(listRec)["data"].(map[string]interface{})
	s.Equal(float64(1), listData["count"])

	deleteRec := s.request(http.MethodDelete, "/api/v1/charts/"+chartID, nil)
	s.Equal(http.StatusOK, deleteRec.Code)

	missingRec := s.request(http.MethodGet, "/api/v1/charts/"+chartID, nil)
	s.Equal(http.StatusNotFound, missingRec.Code)
}

func (s *ServerTestSuite) TestSearchFoods_ShouldRequireQuery() {
	rec := s.request(http.MethodGet, "/api/v1/foods/search", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}
