package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
	"github.com/nutriveda/planner/internal/ports/outbound"
)

// PatientRepository implements an in-memory patient store
type PatientRepository struct {
	patients map[uuid.UUID]*patient.Profile
	order    []uuid.UUID
	mutex    sync.RWMutex
}

// NewPatientRepository creates a new in-memory patient repository
func NewPatientRepository() outbound.PatientRepository {
	return &PatientRepository{patients: make(map[uuid.UUID]*patient.Profile)}
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Profile) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.patients[p.ID()]; !exists {
		r.order = append(r.order, p.ID())
	}
	r.patients[p.ID()] = p
	return nil
}

func (r *PatientRepository) Update(ctx context.Context, p *patient.Profile) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.patients[p.ID()]; !exists {
		return outbound.ErrNotFound
	}
	r.patients[p.ID()] = p
	return nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*patient.Profile, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	p, exists := r.patients[id]
	if !exists {
		return nil, outbound.ErrNotFound
	}
	return p, nil
}

func (r *PatientRepository) List(ctx context.Context, offset, limit int) ([]*patient.Profile, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	total := int64(len(r.order))
	if offset >= len(r.order) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(r.order) {
		end = len(r.order)
	}
	result := make([]*patient.Profile, 0, end-offset)
	for _, id := range r.order[offset:end] {
		result = append(result, r.patients[id])
	}
	return result, total, nil
}

func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.patients[id]; !exists {
		return outbound.ErrNotFound
	}
	delete(r.patients, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// FoodRepository implements an in-memory food catalog. Insertion order
// is preserved so plan synthesis stays deterministic.
type FoodRepository struct {
	foods map[string]catalog.FoodItem
	order []string
	mutex sync.RWMutex
}

// NewFoodRepository creates a new in-memory food repository
func NewFoodRepository() outbound.FoodRepository {
	return &FoodRepository{foods: make(map[string]catalog.FoodItem)}
}

func (r *FoodRepository) Create(ctx context.Context, f *catalog.FoodItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.foods[f.ID]; !exists {
		r.order = append(r.order, f.ID)
	}
	r.foods[f.ID] = *f
	return nil
}

func (r *FoodRepository) CreateBatch(ctx context.Context, foods []catalog.FoodItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, f := range foods {
		if _, exists := r.foods[f.ID]; !exists {
			r.order = append(r.order, f.ID)
		}
		r.foods[f.ID] = f
	}
	return nil
}

func (r *FoodRepository) FindByID(ctx context.Context, id string) (*catalog.FoodItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	f, exists := r.foods[id]
	if !exists {
		return nil, outbound.ErrNotFound
	}
	return &f, nil
}

func (r *FoodRepository) FindAll(ctx context.Context) ([]catalog.FoodItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	result := make([]catalog.FoodItem, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.foods[id])
	}
	return result, nil
}

func (r *FoodRepository) FindByCategories(ctx context.Context, categories []catalog.Category) ([]catalog.FoodItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var result []catalog.FoodItem
	for _, id := range r.order {
		f := r.foods[id]
		for _, c := range categories {
			if f.Category == c {
				result = append(result, f)
				break
			}
		}
	}
	return result, nil
}

func (r *FoodRepository) SearchByName(ctx context.Context, query string, limit int) ([]catalog.FoodItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	query = strings.ToLower(query)
	var result []catalog.FoodItem
	for _, id := range r.order {
		f := r.foods[id]
		if strings.Contains(strings.ToLower(f.Name), query) {
			result = append(result, f)
			if len(result) >= limit {
				break
			}
		}
	}
	return result, nil
}

// RecipeRepository implements an in-memory recipe store
type RecipeRepository struct {
	recipes map[string]catalog.RecipeItem
	order   []string
	mutex   sync.RWMutex
}

// NewRecipeRepository creates a new in-memory recipe repository
func NewRecipeRepository() outbound.RecipeRepository {
	return &RecipeRepository{recipes: make(map[string]catalog.RecipeItem)}
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *catalog.RecipeItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.recipes[recipe.ID]; !exists {
		r.order = append(r.order, recipe.ID)
	}
	r.recipes[recipe.ID] = *recipe
	return nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*catalog.RecipeItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	recipe, exists := r.recipes[id]
	if !exists {
		return nil, outbound.ErrNotFound
	}
	return &recipe, nil
}

func (r *RecipeRepository) FindByMealType(ctx context.Context, mealType catalog.MealType, limit int) ([]catalog.RecipeItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var result []catalog.RecipeItem
	for _, id := range r.order {
		recipe := r.recipes[id]
		if recipe.MealType == mealType {
			result = append(result, recipe)
			if limit > 0 && len(result) >= limit {
				break
			}
		}
	}
	return result, nil
}

func (r *RecipeRepository) FindAll(ctx context.Context) ([]catalog.RecipeItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	result := make([]catalog.RecipeItem, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.recipes[id])
	}
	return result, nil
}

// ChartRepository implements an in-memory diet chart store
type ChartRepository struct {
	charts map[uuid.UUID]*plan.DietChart
	mutex  sync.RWMutex
}

// NewChartRepository creates a new in-memory chart repository
func NewChartRepository() outbound.ChartRepository {
	return &ChartRepository{charts: make(map[uuid.UUID]*plan.DietChart)}
}

func (r *ChartRepository) Create(ctx context.Context, c *plan.DietChart) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.charts[c.ID()] = c
	return nil
}

func (r *ChartRepository) Update(ctx context.Context, c *plan.DietChart) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.charts[c.ID()]; !exists {
		return outbound.ErrNotFound
	}
	r.charts[c.ID()] = c
	return nil
}

func (r *ChartRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.DietChart, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	c, exists := r.charts[id]
	if !exists {
		return nil, outbound.ErrNotFound
	}
	return c, nil
}

func (r *ChartRepository) FindByPatientID(ctx context.Context, patientID string) ([]*plan.DietChart, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var result []*plan.DietChart
	for _, c := range r.charts {
		if c.PatientID() == patientID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt().Before(result[j].CreatedAt())
	})
	return result, nil
}

func (r *ChartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.charts[id]; !exists {
		return outbound.ErrNotFound
	}
	delete(r.charts, id)
	return nil
}
