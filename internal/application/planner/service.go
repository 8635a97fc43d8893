package planner

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
	"github.com/nutriveda/planner/internal/ports/inbound"
	"github.com/nutriveda/planner/internal/ports/outbound"
	"github.com/nutriveda/planner/pkg/errors"
)

const (
	promptFoodLimit   = 30
	promptRecipeLimit = 10
	suggestionLimit   = 5
)

// Config tunes plan synthesis. Zero fields take the values of
// DefaultConfig.
type Config struct {
	DefaultDays   int
	MaxDays       int
	CacheTTL      time.Duration
	DefaultSeason string
}

// DefaultConfig mirrors the shipped configuration defaults.
func DefaultConfig() Config {
	return Config{
		DefaultDays:   7,
		MaxDays:       30,
		CacheTTL:      30 * time.Minute,
		DefaultSeason: catalog.SeasonAll,
	}
}

// Service implements the planner use cases
type Service struct {
	cfg         Config
	patientRepo outbound.PatientRepository
	foodRepo    outbound.FoodRepository
	recipeRepo  outbound.RecipeRepository
	cache       outbound.CacheRepository
	aiService   outbound.AIService
	logger      *zap.Logger
}

// NewService creates a new planner service
func NewService(
	cfg Config,
	patientRepo outbound.PatientRepository,
	foodRepo outbound.FoodRepository,
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	aiService outbound.AIService,
	logger *zap.Logger,
) inbound.PlannerService {
	defaults := DefaultConfig()
	if cfg.DefaultDays <= 0 {
		cfg.DefaultDays = defaults.DefaultDays
	}
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = defaults.MaxDays
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaults.CacheTTL
	}
	if cfg.DefaultSeason == "" {
		cfg.DefaultSeason = defaults.DefaultSeason
	}
	return &Service{
		cfg:         cfg,
		patientRepo: patientRepo,
		foodRepo:    foodRepo,
		recipeRepo:  recipeRepo,
		cache:       cache,
		aiService:   aiService,
		logger:      logger.Named("planner-service"),
	}
}

// GenerateDietPlan builds a plan for the patient. The generative path is
// tried only when requested and configured; any failure there falls back
// to the deterministic composer.
func (s *Service) GenerateDietPlan(ctx context.Context, patientID string, opts inbound.PlanOptions) (*plan.DietPlan, error) {
	p, err := s.loadPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	days := opts.Days
	if days <= 0 {
		days = s.cfg.DefaultDays
	}
	if days > s.cfg.MaxDays {
		days = s.cfg.MaxDays
	}
	target := dailyCalorieTarget(p, opts.TargetCalories)
	season := s.season(opts.Season)

	if cached := s.cachedPlan(ctx, patientID, days, target, season, opts.UseGenerative); cached != nil {
		return cached, nil
	}

	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load food catalog", err)
	}
	suitable := SuitableFoods(foods, p, season)

	s.logger.Info("Generating diet plan",
		zap.String("patient_id", patientID),
		zap.Int("days", days),
		zap.Float64("target_calories", target),
		zap.Int("suitable_foods", len(suitable)),
		zap.Bool("generative", opts.UseGenerative),
	)

	var result *plan.DietPlan
	if opts.UseGenerative && s.aiService != nil {
		result = s.generativePlan(ctx, p, suitable, target, days, season)
	}
	if result == nil {
		result = s.deterministicPlan(p, suitable, target, days, season)
	}

	s.storePlan(ctx, patientID, days, target, season, opts.UseGenerative, result)
	return result, nil
}

// GetSuitableFoods returns the catalog filtered for the patient and
// ranked best first.
func (s *Service) GetSuitableFoods(ctx context.Context, patientID string, season string) ([]catalog.FoodItem, error) {
	p, err := s.loadPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load food catalog", err)
	}
	resolved := s.season(season)
	suitable := SuitableFoods(foods, p, resolved)
	return Rank(suitable, p.Dosha().Primary(), resolved), nil
}

// SuggestFoods recommends foods for the meal slot implied by the hour.
func (s *Service) SuggestFoods(ctx context.Context, patientID string, hour int, season string) (*inbound.SuggestionResult, error) {
	if hour < 0 || hour > 23 {
		return nil, errors.NewBadRequestError("hour must be between 0 and 23")
	}
	p, err := s.loadPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load food catalog", err)
	}

	spec := slotForHour(hour)
	primary := p.Dosha().Primary()
	resolved := s.season(season)
	suitable := SuitableFoods(foods, p, resolved)
	ranked := Rank(preferredCandidates(suitable, spec), primary, resolved)
	if len(ranked) > suggestionLimit {
		ranked = ranked[:suggestionLimit]
	}

	result := &inbound.SuggestionResult{
		MealType: spec.Name,
		Advice:   generalGuidelines(p),
	}
	for _, f := range ranked {
		result.Suggestions = append(result.Suggestions, inbound.FoodSuggestion{
			Food:     f,
			Score:    Score(f, primary, resolved),
			MealType: spec.Name,
			Guidance: servingGuidance(f, spec.Name),
		})
	}
	return result, nil
}

// AnalyzeMealSet computes totals and balance for an ad-hoc item set. The
// patient id is optional; without one the balance is graded against the
// default primary dosha.
func (s *Service) AnalyzeMealSet(ctx context.Context, patientID string, items []plan.MealItem) (*inbound.MealAnalysis, error) {
	primary := patient.Dosha("").Primary()
	if strings.TrimSpace(patientID) != "" {
		p, err := s.loadPatient(ctx, patientID)
		if err != nil {
			return nil, err
		}
		primary = p.Dosha().Primary()
	}
	return &inbound.MealAnalysis{
		Nutrition: plan.TotalNutrition(items),
		Balance:   plan.ComputeBalance(items, primary),
	}, nil
}

// deterministicPlan composes every day from the suitable catalog.
func (s *Service) deterministicPlan(p *patient.Profile, suitable []catalog.FoodItem,
	target float64, days int, season string) *plan.DietPlan {

	result := &plan.DietPlan{
		PatientID:         p.ID().String(),
		TargetCalories:    target,
		GeneralGuidelines: generalGuidelines(p),
		AyurvedicTips:     ayurvedicTips(p),
		GeneratedAt:       time.Now(),
		Source:            plan.SourceFallback,
	}
	for i := 1; i <= days; i++ {
		result.Days = append(result.Days, composeDay(i, suitable, p, target, season))
	}
	return result
}

// generativePlan asks the model once and reconciles its output. Any
// error returns nil so the caller falls back.
func (s *Service) generativePlan(ctx context.Context, p *patient.Profile, suitable []catalog.FoodItem,
	target float64, days int, season string) *plan.DietPlan {

	prompt, err := s.buildPrompt(ctx, p, suitable, target, days, season)
	if err != nil {
		s.logger.Warn("Failed to build generation prompt, using deterministic plan", zap.Error(err))
		return nil
	}

	resp, err := s.aiService.GeneratePlan(ctx, *prompt)
	if err != nil {
		s.logger.Warn("Plan generation failed, using deterministic plan",
			zap.String("patient_id", p.ID().String()),
			zap.Error(err),
		)
		return nil
	}
	if len(resp.Days) == 0 {
		s.logger.Warn("Plan generation returned no days, using deterministic plan")
		return nil
	}
	return reconcilePlan(resp, suitable, p, target, days, season)
}

// buildPrompt assembles the bounded catalog context for generation.
func (s *Service) buildPrompt(ctx context.Context, p *patient.Profile, suitable []catalog.FoodItem,
	target float64, days int, season string) (*outbound.PlanPrompt, error) {

	ranked := Rank(suitable, p.Dosha().Primary(), season)
	if len(ranked) > promptFoodLimit {
		ranked = ranked[:promptFoodLimit]
	}

	prompt := &outbound.PlanPrompt{
		PatientSummary: outbound.PatientSummary{
			Age:           p.Age(),
			Gender:        string(p.Gender()),
			Dosha:         string(p.Dosha()),
			DietaryHabits: string(p.DietaryHabits()),
			Allergies:     p.Allergies(),
			Conditions:    p.Conditions(),
		},
		Days:           days,
		TargetCalories: target,
		Season:         season,
		Recipes:        make(map[string][]outbound.PromptRecipe),
	}
	for _, f := range ranked {
		prompt.Foods = append(prompt.Foods, outbound.PromptFood{
			Name:     f.Name,
			Category: string(f.Category),
			Calories: f.Calories,
			Rasa:     string(f.Rasa),
		})
	}

	for _, mt := range []catalog.MealType{catalog.MealTypeBreakfast, catalog.MealTypeLunch, catalog.MealTypeDinner, catalog.MealTypeSnack} {
		recipes, err := s.recipeRepo.FindByMealType(ctx, mt, promptRecipeLimit)
		if err != nil {
			return nil, fmt.Errorf("load %s recipes: %w", mt, err)
		}
		for _, r := range recipes {
			prompt.Recipes[string(mt)] = append(prompt.Recipes[string(mt)], outbound.PromptRecipe{Name: r.Name})
		}
	}
	return prompt, nil
}

func (s *Service) loadPatient(ctx context.Context, patientID string) (*patient.Profile, error) {
	id, err := uuid.Parse(patientID)
	if err != nil {
		return nil, errors.NewBadRequestError("invalid patient id")
	}
	p, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, outbound.ErrNotFound) {
			return nil, errors.NewPatientNotFoundError(patientID)
		}
		return nil, errors.NewDatabaseError("load patient", err)
	}
	return p, nil
}

// season resolves an empty requested season to the configured default.
func (s *Service) season(requested string) string {
	if requested == "" {
		return s.cfg.DefaultSeason
	}
	return requested
}

// cachedPlan returns a previously generated plan for identical inputs.
// Cache failures are logged and treated as misses.
func (s *Service) cachedPlan(ctx context.Context, patientID string, days int, target float64, season string, generative bool) *plan.DietPlan {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, planCacheKey(patientID, days, target, season, generative))
	if err != nil || data == nil {
		return nil
	}
	var cached plan.DietPlan
	if err := json.Unmarshal(data, &cached); err != nil {
		s.logger.Warn("Discarding unreadable cached plan", zap.Error(err))
		return nil
	}
	s.logger.Debug("Serving cached diet plan", zap.String("patient_id", patientID))
	return &cached
}

func (s *Service) storePlan(ctx context.Context, patientID string, days int, target float64, season string, generative bool, p *plan.DietPlan) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, planCacheKey(patientID, days, target, season, generative), data, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("Failed to cache diet plan", zap.Error(err))
	}
}

func planCacheKey(patientID string, days int, target float64, season string, generative bool) string {
	return fmt.Sprintf("plan:%s:%d:%.0f:%s:%t", patientID, days, target, season, generative)
}
