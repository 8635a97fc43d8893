package plan

import (
	"math"

	"github.com/nutriveda/planner/internal/domain/catalog"
)

// DoshaTally counts how many items act each way on one dosha
type DoshaTally struct {
	Increases int `json:"increases"`
	Decreases int `json:"decreases"`
	Neutral   int `json:"neutral"`
}

func (t *DoshaTally) record(effect catalog.DoshaEffect) {
	switch effect {
	case catalog.EffectIncreases:
		t.Increases++
	case catalog.EffectDecreases:
		t.Decreases++
	default:
		t.Neutral++
	}
}

// forDosha returns the tally for the named dosha
func (d DoshaImpactSummary) forDosha(dosha string) DoshaTally {
	switch dosha {
	case "pitta":
		return d.Pitta
	case "kapha":
		return d.Kapha
	default:
		return d.Vata
	}
}

// DoshaImpactSummary tallies item effects per dosha
type DoshaImpactSummary struct {
	Vata  DoshaTally `json:"vata"`
	Pitta DoshaTally `json:"pitta"`
	Kapha DoshaTally `json:"kapha"`
}

// AyurvedicBalance summarizes a meal set's taste distribution and dosha
// alignment. BalanceScore grades alignment with the patient's primary
// dosha on a 0-100 scale.
type AyurvedicBalance struct {
	RasaDistribution map[string]int     `json:"rasaDistribution"`
	DoshaImpact      DoshaImpactSummary `json:"doshaImpact"`
	BalanceScore     int                `json:"balanceScore"`
}

// ComputeBalance builds the Ayurvedic summary for a set of meal items.
// Tallies are per item, not quantity weighted. Items carrying a rasa
// outside the six classical tastes are left out of the rasa counts but
// still contribute to the dosha tallies. An empty item set scores zero
// with all six rasa buckets present at zero.
func ComputeBalance(items []MealItem, primaryDosha string) AyurvedicBalance {
	b := AyurvedicBalance{
		RasaDistribution: make(map[string]int, len(catalog.Rasas)),
	}
	for _, r := range catalog.Rasas {
		b.RasaDistribution[string(r)] = 0
	}

	for _, it := range items {
		if it.Food.Rasa.Valid() {
			b.RasaDistribution[string(it.Food.Rasa)]++
		}

		b.DoshaImpact.Vata.record(it.Food.DoshaImpact.Effect("vata"))
		b.DoshaImpact.Pitta.record(it.Food.DoshaImpact.Effect("pitta"))
		b.DoshaImpact.Kapha.record(it.Food.DoshaImpact.Effect("kapha"))
	}

	b.BalanceScore = balanceScore(b.DoshaImpact.forDosha(primaryDosha), len(items))
	return b
}

// balanceScore rewards items that pacify the primary dosha and
// penalizes, at half weight, those that aggravate it.
func balanceScore(tally DoshaTally, itemCount int) int {
	if itemCount == 0 {
		return 0
	}
	decPct := float64(tally.Decreases) / float64(itemCount) * 100
	incPct := float64(tally.Increases) / float64(itemCount) * 100
	score := math.Round(decPct - 0.5*incPct)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}
