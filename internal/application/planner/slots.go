// Package planner implements diet plan synthesis: suitability filtering,
// Ayurvedic scoring, greedy meal composition and reconciliation of
// generative output, plus the service that orchestrates them.
package planner

import "github.com/nutriveda/planner/internal/domain/catalog"

// slotSpec fixes one meal slot's share of the daily calorie target, its
// preferred catalog categories and its serving window.
type slotSpec struct {
	Name          string
	CalorieShare  float64
	Categories    []catalog.Category
	Timing        string
	FallbackNotes string
}

// daySlots is the canonical slot table. Shares sum to 1.0.
var daySlots = []slotSpec{
	{
		Name:         "breakfast",
		CalorieShare: 0.25,
		Categories:   []catalog.Category{catalog.CategoryBreakfast, catalog.CategoryBeverages, catalog.CategoryFruits},
		Timing:       "6:00-10:00",
	},
	{
		Name:         "morning_snack",
		CalorieShare: 0.05,
		Categories:   []catalog.Category{catalog.CategorySnacks, catalog.CategoryFruits, catalog.CategoryNuts},
		Timing:       "10:00-12:00",
	},
	{
		Name:         "lunch",
		CalorieShare: 0.40,
		Categories:   []catalog.Category{catalog.CategoryMainCourse, catalog.CategoryVegetables, catalog.CategoryGrains},
		Timing:       "12:00-14:00",
	},
	{
		Name:         "evening_snack",
		CalorieShare: 0.05,
		Categories:   []catalog.Category{catalog.CategorySnacks, catalog.CategoryFruits, catalog.CategoryNuts},
		Timing:       "16:00-17:00",
	},
	{
		Name:         "dinner",
		CalorieShare: 0.30,
		Categories:   []catalog.Category{catalog.CategoryMainCourse, catalog.CategoryVegetables, catalog.CategoryLight},
		Timing:       "18:00-21:00",
	},
}

// slotForHour maps an hour of day to the meal slot being eaten then.
// Hours outside every meal window resolve to a snack.
func slotForHour(hour int) slotSpec {
	switch {
	case hour >= 6 && hour <= 10:
		return daySlots[0]
	case hour >= 12 && hour <= 14:
		return daySlots[2]
	case hour >= 18 && hour <= 21:
		return daySlots[4]
	default:
		return daySlots[1]
	}
}
