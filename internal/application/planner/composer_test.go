package planner_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nutriveda/planner/internal/application/planner"
	"github.com/nutriveda/planner/internal/domain/catalog"
)

type ComposerTestSuite struct {
	suite.Suite
}

func TestComposerTestSuite(t *testing.T) {
	suite.Run(t, new(ComposerTestSuite))
}

func caloricFood(name string, calories float64) catalog.FoodItem {
	f := catalog.FoodItem{ID: name, Name: name, Category: catalog.CategoryMainCourse, Calories: calories}
	f.ApplyDefaults()
	return f
}

func (s *ComposerTestSuite) TestComposeMeal_ShouldRespectCalorieSlack() {
	ranked := []catalog.FoodItem{
		caloricFood("a", 300),
		caloricFood("b", 300),
		caloricFood("c", 300),
		caloricFood("d", 300),
		caloricFood("e", 300),
	}

	slot := planner.ComposeMeal(ranked, 500)

	s.NotEmpty(slot.Items)
	s.LessOrEqual(slot.TotalCalories, 500*1.2)
}

func (s *ComposerTestSuite) TestComposeMeal_ShouldCapItemCount() {
	ranked := []catalog.FoodItem{
		caloricFood("a", 10),
		caloricFood("b", 10),
		caloricFood("c", 10),
		caloricFood("d", 10),
		caloricFood("e", 10),
		caloricFood("f", 10),
	}

	slot := planner.ComposeMeal(ranked, 1000)

	s.Len(slot.Items, 4)
}

func (s *ComposerTestSuite) TestComposeMeal_ShouldBucketQuantities() {
	// remaining 500 / 400 cal = 1.25 -> quantity 1.0
	slot := planner.ComposeMeal([]catalog.FoodItem{caloricFood("a", 400)}, 500)
	s.Require().Len(slot.Items, 1)
	s.Equal(1.0, slot.Items[0].Quantity)

	// remaining 270 / 300 cal = 0.9 -> quantity 0.75
	slot = planner.ComposeMeal([]catalog.FoodItem{caloricFood("b", 300)}, 270)
	s.Require().Len(slot.Items, 1)
	s.Equal(0.75, slot.Items[0].Quantity)

	// remaining 500 / 100 cal = 5, clamped to 2 -> quantity 1.5
	slot = planner.ComposeMeal([]catalog.FoodItem{caloricFood("c", 100)}, 500)
	s.Require().Len(slot.Items, 1)
	s.Equal(1.5, slot.Items[0].Quantity)

	// after a 450-cal item at quantity 1.0, remaining 50 / 120 cal = 0.42 -> quantity 0.5
	slot = planner.ComposeMeal([]catalog.FoodItem{caloricFood("d", 450), caloricFood("e", 120)}, 500)
	s.Require().Len(slot.Items, 2)
	s.Equal(1.0, slot.Items[0].Quantity)
	s.Equal(0.5, slot.Items[1].Quantity)

	// an item that overflows the slack entirely is skipped
	slot = planner.ComposeMeal([]catalog.FoodItem{caloricFood("f", 1200)}, 500)
	s.Empty(slot.Items)
}

func (s *ComposerTestSuite) TestComposeMeal_ShouldSkipZeroCalorieFoods() {
	slot := planner.ComposeMeal([]catalog.FoodItem{caloricFood("water", 0)}, 500)

	s.Empty(slot.Items)
	s.Equal(0.0, slot.TotalCalories)
}

func (s *ComposerTestSuite) TestComposeMeal_ShouldHandleEmptyCandidates() {
	slot := planner.ComposeMeal(nil, 500)

	s.Empty(slot.Items)
	s.Equal(0.0, slot.TotalCalories)
}

func (s *ComposerTestSuite) TestComposeMeal_ShouldBeDeterministic() {
	ranked := []catalog.FoodItem{
		caloricFood("a", 250),
		caloricFood("b", 180),
		caloricFood("c", 120),
	}

	first := planner.ComposeMeal(ranked, 600)
	second := planner.ComposeMeal(ranked, 600)

	s.Equal(first, second)
}
