package planner

import (
	"sort"

	"github.com/nutriveda/planner/internal/domain/catalog"
)

// Scoring weights. Nutritional terms use per-100g values; the Ayurvedic
// bonuses are flat.
const (
	proteinWeight    = 0.3
	sugarPenalty     = 0.1
	fiberWeight      = 0.2
	doshaPacifyBonus = 10.0
	seasonExactBonus = 5.0
)

// Score rates one food for a patient's primary dosha and the requested
// season. Higher is better. The season bonus applies only to an exact
// season listing, never through the "all" wildcard.
func Score(f catalog.FoodItem, primaryDosha, season string) float64 {
	score := proteinWeight*f.Protein - sugarPenalty*f.Sugar + fiberWeight*f.Fiber
	if f.DoshaImpact.Effect(primaryDosha) == catalog.EffectDecreases {
		score += doshaPacifyBonus
	}
	if f.SeasonExactly(season) {
		score += seasonExactBonus
	}
	return score
}

// Rank sorts foods by descending score. The sort is stable so equal
// scores keep catalog order and repeated runs produce identical plans.
func Rank(foods []catalog.FoodItem, primaryDosha, season string) []catalog.FoodItem {
	ranked := make([]catalog.FoodItem, len(foods))
	copy(ranked, foods)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], primaryDosha, season) > Score(ranked[j], primaryDosha, season)
	})
	return ranked
}
