package plan_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/plan"
)

type BalanceTestSuite struct {
	suite.Suite
}

func TestBalanceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceTestSuite))
}

func item(rasa catalog.Rasa, impact catalog.DoshaImpact, qty float64) plan.MealItem {
	f := catalog.FoodItem{
		Name:        "test food",
		Rasa:        rasa,
		DoshaImpact: impact,
		Calories:    100,
	}
	f.ApplyDefaults()
	return plan.MealItem{Food: f, Quantity: qty}
}

func (s *BalanceTestSuite) TestComputeBalance_ShouldScoreZeroForEmptySet() {
	b := plan.ComputeBalance(nil, "vata")

	s.Equal(0, b.BalanceScore)
	s.Len(b.RasaDistribution, 6)
	for _, r := range catalog.Rasas {
		s.Equal(0, b.RasaDistribution[string(r)])
	}
}

func (s *BalanceTestSuite) TestComputeBalance_ShouldTallyPerItemNotPerQuantity() {
	// Two items with large quantities still count once each.
	items := []plan.MealItem{
		item(catalog.RasaSweet, catalog.DoshaImpact{Vata: catalog.EffectDecreases}, 1.5),
		item(catalog.RasaBitter, catalog.DoshaImpact{Vata: catalog.EffectIncreases}, 1.5),
	}

	b := plan.ComputeBalance(items, "vata")

	s.Equal(1, b.DoshaImpact.Vata.Decreases)
	s.Equal(1, b.DoshaImpact.Vata.Increases)
	s.Equal(0, b.DoshaImpact.Vata.Neutral)
	s.Equal(1, b.RasaDistribution["sweet"])
	s.Equal(1, b.RasaDistribution["bitter"])
}

func (s *BalanceTestSuite) TestComputeBalance_ShouldGradeAgainstPrimaryDosha() {
	// 3 of 4 items pacify pitta, 1 aggravates: 75 - 0.5*25 = 63.
	items := []plan.MealItem{
		item(catalog.RasaSweet, catalog.DoshaImpact{Pitta: catalog.EffectDecreases}, 1),
		item(catalog.RasaSweet, catalog.DoshaImpact{Pitta: catalog.EffectDecreases}, 1),
		item(catalog.RasaBitter, catalog.DoshaImpact{Pitta: catalog.EffectDecreases}, 1),
		item(catalog.RasaPungent, catalog.DoshaImpact{Pitta: catalog.EffectIncreases}, 1),
	}

	b := plan.ComputeBalance(items, "pitta")

	s.Equal(63, b.BalanceScore)
}

func (s *BalanceTestSuite) TestComputeBalance_ShouldClampScoreToZero() {
	items := []plan.MealItem{
		item(catalog.RasaPungent, catalog.DoshaImpact{Kapha: catalog.EffectIncreases}, 1),
		item(catalog.RasaPungent, catalog.DoshaImpact{Kapha: catalog.EffectIncreases}, 1),
	}

	b := plan.ComputeBalance(items, "kapha")

	s.Equal(0, b.BalanceScore)
}

func (s *BalanceTestSuite) TestComputeBalance_ShouldReachFullScoreWhenAllPacify() {
	items := []plan.MealItem{
		item(catalog.RasaSweet, catalog.DoshaImpact{Vata: catalog.EffectDecreases}, 1),
		item(catalog.RasaSour, catalog.DoshaImpact{Vata: catalog.EffectDecreases}, 1),
	}

	b := plan.ComputeBalance(items, "vata")

	s.Equal(100, b.BalanceScore)
}

func (s *BalanceTestSuite) TestComputeBalance_ShouldIgnoreUnknownRasa() {
	items := []plan.MealItem{
		{
			Food: catalog.FoodItem{
				Name:        "novel taste",
				Rasa:        catalog.Rasa("umami"),
				DoshaImpact: catalog.DoshaImpact{Vata: catalog.EffectDecreases},
			},
			Quantity: 1,
		},
		{Food: catalog.FoodItem{Name: "plain rice", Rasa: catalog.RasaSweet}, Quantity: 1},
	}

	b := plan.ComputeBalance(items, "vata")

	// Unknown rasa stays out of the counts, only the six classical
	// buckets exist.
	s.Len(b.RasaDistribution, 6)
	s.Equal(1, b.RasaDistribution["sweet"])
	total := 0
	for _, n := range b.RasaDistribution {
		total += n
	}
	s.Equal(1, total)
	// The item still counts toward the dosha tallies and the score.
	s.Equal(1, b.DoshaImpact.Vata.Decreases)
	s.Equal(50, b.BalanceScore)
}

func (s *BalanceTestSuite) TestComputeBalance_ShouldTreatMissingImpactAsNeutral() {
	items := []plan.MealItem{
		{Food: catalog.FoodItem{Name: "bare", Rasa: catalog.RasaSweet}, Quantity: 1},
	}

	b := plan.ComputeBalance(items, "vata")

	s.Equal(1, b.DoshaImpact.Vata.Neutral)
	s.Equal(0, b.BalanceScore)
}

func (s *BalanceTestSuite) TestTotalNutrition_ShouldWeightByQuantity() {
	items := []plan.MealItem{
		{Food: catalog.FoodItem{Calories: 200, Protein: 10, Carbs: 30, Fat: 5, Fiber: 4}, Quantity: 0.5},
		{Food: catalog.FoodItem{Calories: 100, Protein: 3, Carbs: 20, Fat: 1, Fiber: 2}, Quantity: 1.5},
	}

	n := plan.TotalNutrition(items)

	s.Equal(250.0, n.Calories)
	s.Equal(9.5, n.Protein)
	s.Equal(45.0, n.Carbs)
	s.Equal(4.0, n.Fat)
	s.Equal(5.0, n.Fiber)
}
