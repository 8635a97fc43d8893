// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
)

// FoodFactory builds catalog foods with plausible nutrition, seeded so
// tests stay reproducible.
type FoodFactory struct {
	faker *gofakeit.Faker
	seq   int
}

// NewFoodFactory creates a food factory with a seeded faker
func NewFoodFactory(seed int64) *FoodFactory {
	return &FoodFactory{faker: gofakeit.New(seed)}
}

// Food builds one food in the given category with defaulted Ayurvedic
// attributes.
func (f *FoodFactory) Food(category catalog.Category) catalog.FoodItem {
	f.seq++
	item := catalog.FoodItem{
		ID:       fmt.Sprintf("food-%03d", f.seq),
		Name:     fmt.Sprintf("%s %d", f.faker.Fruit(), f.seq),
		Category: category,
		Calories: f.faker.Float64Range(40, 400),
		Protein:  f.faker.Float64Range(1, 25),
		Carbs:    f.faker.Float64Range(5, 60),
		Fat:      f.faker.Float64Range(0, 20),
		Fiber:    f.faker.Float64Range(0, 12),
		Sugar:    f.faker.Float64Range(0, 8),
		Sodium:   f.faker.Float64Range(0, 400),
	}
	item.ApplyDefaults()
	return item
}

// FoodWithImpact builds a food with a fixed effect on one dosha
func (f *FoodFactory) FoodWithImpact(category catalog.Category, dosha string, effect catalog.DoshaEffect) catalog.FoodItem {
	item := f.Food(category)
	switch dosha {
	case "vata":
		item.DoshaImpact.Vata = effect
	case "pitta":
		item.DoshaImpact.Pitta = effect
	case "kapha":
		item.DoshaImpact.Kapha = effect
	}
	return item
}

// Catalog builds a spread of foods covering every slot's preferred
// categories.
func (f *FoodFactory) Catalog(perCategory int) []catalog.FoodItem {
	categories := []catalog.Category{
		catalog.CategoryBreakfast, catalog.CategoryBeverages, catalog.CategoryFruits,
		catalog.CategoryVegetables, catalog.CategoryGrains, catalog.CategoryMainCourse,
		catalog.CategoryLight, catalog.CategorySnacks, catalog.CategoryNuts,
	}
	var foods []catalog.FoodItem
	for _, c := range categories {
		for i := 0; i < perCategory; i++ {
			foods = append(foods, f.Food(c))
		}
	}
	return foods
}

// PatientFactory builds patient profiles
type PatientFactory struct {
	faker *gofakeit.Faker
}

// NewPatientFactory creates a patient factory with a seeded faker
func NewPatientFactory(seed int64) *PatientFactory {
	return &PatientFactory{faker: gofakeit.New(seed)}
}

// Patient builds a valid adult profile with the given dosha
func (f *PatientFactory) Patient(dosha patient.Dosha) *patient.Profile {
	p, err := patient.NewProfile(
		f.faker.Name(),
		f.faker.Number(20, 60),
		patient.GenderFemale,
		f.faker.Float64Range(150, 190),
		f.faker.Float64Range(45, 95),
		dosha,
	)
	if err != nil {
		panic(err)
	}
	return p
}

// MealItem wraps a food at the given quantity
func MealItem(f catalog.FoodItem, qty float64) plan.MealItem {
	return plan.MealItem{Food: f, Quantity: qty}
}
