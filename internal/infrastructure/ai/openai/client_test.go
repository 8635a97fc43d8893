package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nutriveda/planner/internal/infrastructure/ai/openai"
	"github.com/nutriveda/planner/internal/infrastructure/config"
	"github.com/nutriveda/planner/internal/ports/outbound"
	"github.com/nutriveda/planner/pkg/logger"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(serverURL string) *openai.Client {
	return openai.NewClient(config.AIConfig{
		BaseURL:        serverURL,
		APIKey:         "test-key",
		Model:          "test-model",
		MaxTokens:      512,
		Temperature:    0.4,
		RequestTimeout: 5 * time.Second,
	}, logger.NewNop())
}

func chatReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

const validPlanJSON = `{
  "days": [
    {"day": 1, "meals": {
      "breakfast": {"items": ["Oats Porridge"], "calories": 350, "timing": "7:30", "notes": "warm"},
      "lunch": {"items": ["Khichdi", "Buttermilk"], "calories": 650, "timing": "13:00", "notes": ""}
    }}
  ]
}`

func (s *ClientTestSuite) prompt() outbound.PlanPrompt {
	return outbound.PlanPrompt{
		Days:           1,
		TargetCalories: 1800,
		PatientSummary: outbound.PatientSummary{Age: 30, Gender: "female", Dosha: "vata"},
		Foods:          []outbound.PromptFood{{Name: "Oats Porridge", Category: "breakfast", Calories: 350}},
	}
}

func (s *ClientTestSuite) TestGeneratePlan_ShouldParseCleanJSON() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/chat/completions", r.URL.Path)
		s.Equal("Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(chatReply(validPlanJSON)))
	}))
	defer server.Close()

	result, err := s.newClient(server.URL).GeneratePlan(context.Background(), s.prompt())

	s.Require().NoError(err)
	s.Require().Len(result.Days, 1)
	s.Equal(1, result.Days[0].Day)
	s.Require().NotNil(result.Days[0].Meals["breakfast"])
	s.Equal([]string{"Oats Porridge"}, result.Days[0].Meals["breakfast"].Items)
	s.Equal(650.0, result.Days[0].Meals["lunch"].Calories)
}

func (s *ClientTestSuite) TestGeneratePlan_ShouldStripCodeFencesAndProse() {
	fenced := "Here is your plan:\n```json\n" + validPlanJSON + "\n```\nEnjoy!"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(fenced)))
	}))
	defer server.Close()

	result, err := s.newClient(server.URL).GeneratePlan(context.Background(), s.prompt())

	s.Require().NoError(err)
	s.Len(result.Days, 1)
}

func (s *ClientTestSuite) TestGeneratePlan_ShouldFailOnMalformedJSON() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("I cannot produce a plan right now.")))
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).GeneratePlan(context.Background(), s.prompt())

	s.Require().Error(err)
}

func (s *ClientTestSuite) TestGeneratePlan_ShouldFailOnHTTPError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).GeneratePlan(context.Background(), s.prompt())

	s.Require().Error(err)
	s.Contains(err.Error(), "status 503")
}

func (s *ClientTestSuite) TestGeneratePlan_ShouldFailOnEmptyDays() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`{"days": []}`)))
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).GeneratePlan(context.Background(), s.prompt())

	s.Require().Error(err)
}

func (s *ClientTestSuite) TestGeneratePlan_ShouldRespectContextCancellation() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(chatReply(validPlanJSON)))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.newClient(server.URL).GeneratePlan(ctx, s.prompt())

	s.Require().Error(err)
}
