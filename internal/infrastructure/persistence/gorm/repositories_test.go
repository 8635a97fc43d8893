package gorm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	goorm "gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	persistence "github.com/nutriveda/planner/internal/infrastructure/persistence/gorm"

	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/domain/patient"
	"github.com/nutriveda/planner/internal/domain/plan"
)

type RepositoriesTestSuite struct {
	suite.Suite
	db *goorm.DB
}

func TestRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesTestSuite))
}

func (s *RepositoriesTestSuite) SetupTest() {
	db, err := goorm.Open(sqlite.Open(":memory:"), &goorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(persistence.AutoMigrate(db))
	s.db = db
}

func (s *RepositoriesTestSuite) TestPatientRepository_ShouldRoundTripProfile() {
	repo := persistence.NewPatientRepository(s.db)
	p, err := patient.NewProfile("Asha Rao", 30, patient.GenderFemale, 160, 55, patient.DoshaVataPitta)
	s.Require().NoError(err)
	p.SetDietaryProfile(patient.DietVegetarian, []string{"nuts"}, []string{"diabetes"})

	s.Require().NoError(repo.Create(context.Background(), p))

	loaded, err := repo.FindByID(context.Background(), p.ID())
	s.Require().NoError(err)
	s.Equal(p.Name(), loaded.Name())
	s.Equal(patient.DoshaVataPitta, loaded.Dosha())
	s.Equal([]string{"nuts"}, loaded.Allergies())
	// derived values come back from recomputation, not storage
	s.Equal(p.BMR(), loaded.BMR())
	s.Equal(p.BMI(), loaded.BMI())
}

func (s *RepositoriesTestSuite) TestPatientRepository_ShouldPageList() {
	repo := persistence.NewPatientRepository(s.db)
	for i := 0; i < 3; i++ {
		p, err := patient.NewProfile("Patient Number", 30+i, patient.GenderMale, 170, 70, patient.DoshaKapha)
		s.Require().NoError(err)
		s.Require().NoError(repo.Create(context.Background(), p))
	}

	page, total, err := repo.List(context.Background(), 0, 2)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(page, 2)
}

func (s *RepositoriesTestSuite) TestFoodRepository_ShouldRoundTripAyurvedicAttributes() {
	repo := persistence.NewFoodRepository(s.db)
	f := catalog.FoodItem{
		ID: "food-1", Name: "Ginger Tea", Category: catalog.CategoryBeverages,
		Calories: 25, Rasa: catalog.RasaPungent, Virya: catalog.ViryaHeating,
		DoshaImpact: catalog.DoshaImpact{
			Vata: catalog.EffectDecreases, Kapha: catalog.EffectDecreases,
		},
		Season: []string{"winter"},
	}
	f.ApplyDefaults()

	s.Require().NoError(repo.Create(context.Background(), &f))

	loaded, err := repo.FindByID(context.Background(), "food-1")
	s.Require().NoError(err)
	s.Equal(catalog.RasaPungent, loaded.Rasa)
	s.Equal(catalog.ViryaHeating, loaded.Virya)
	s.Equal(catalog.EffectDecreases, loaded.DoshaImpact.Vata)
	s.Equal(catalog.EffectNeutral, loaded.DoshaImpact.Pitta)
	s.Equal([]string{"winter"}, []string(loaded.Season))
}

func (s *RepositoriesTestSuite) TestFoodRepository_ShouldFilterByCategories() {
	repo := persistence.NewFoodRepository(s.db)
	foods := []catalog.FoodItem{
		{ID: "f1", Name: "Oats", Category: catalog.CategoryBreakfast},
		{ID: "f2", Name: "Rice", Category: catalog.CategoryGrains},
		{ID: "f3", Name: "Apple", Category: catalog.CategoryFruits},
	}
	for i := range foods {
		foods[i].ApplyDefaults()
	}
	s.Require().NoError(repo.CreateBatch(context.Background(), foods))

	result, err := repo.FindByCategories(context.Background(),
		[]catalog.Category{catalog.CategoryBreakfast, catalog.CategoryFruits})

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *RepositoriesTestSuite) TestFoodRepository_ShouldSearchByName() {
	repo := persistence.NewFoodRepository(s.db)
	foods := []catalog.FoodItem{
		{ID: "f1", Name: "Moong Dal"},
		{ID: "f2", Name: "Masoor Dal"},
		{ID: "f3", Name: "Rice"},
	}
	for i := range foods {
		foods[i].ApplyDefaults()
	}
	s.Require().NoError(repo.CreateBatch(context.Background(), foods))

	result, err := repo.SearchByName(context.Background(), "Dal", 10)

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *RepositoriesTestSuite) TestRecipeRepository_ShouldFilterByMealType() {
	repo := persistence.NewRecipeRepository(s.db)
	recipes := []catalog.RecipeItem{
		{ID: "r1", Name: "Upma", MealType: catalog.MealTypeBreakfast},
		{ID: "r2", Name: "Khichdi", MealType: catalog.MealTypeLunch},
		{ID: "r3", Name: "Poha", MealType: catalog.MealTypeBreakfast},
	}
	for i := range recipes {
		s.Require().NoError(repo.Create(context.Background(), &recipes[i]))
	}

	result, err := repo.FindByMealType(context.Background(), catalog.MealTypeBreakfast, 10)

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *RepositoriesTestSuite) TestChartRepository_ShouldRoundTripWithRecomputedTotals() {
	repo := persistence.NewChartRepository(s.db)
	rice := catalog.FoodItem{
		Name: "rice", Calories: 130, Rasa: catalog.RasaSweet,
		DoshaImpact: catalog.DoshaImpact{Vata: catalog.EffectDecreases},
	}
	rice.ApplyDefaults()
	c, err := plan.NewDietChart("patient-1", "Week 1", []plan.ChartMeal{
		{Name: "Lunch", Items: []plan.MealItem{{Food: rice, Quantity: 2}}},
	}, "vata")
	s.Require().NoError(err)

	s.Require().NoError(repo.Create(context.Background(), c))

	loaded, err := repo.FindByID(context.Background(), c.ID())
	s.Require().NoError(err)
	s.Equal(c.PatientID(), loaded.PatientID())
	s.Equal(260.0, loaded.Nutrition().Calories)
	s.Equal(100, loaded.Balance().BalanceScore)

	charts, err := repo.FindByPatientID(context.Background(), "patient-1")
	s.Require().NoError(err)
	s.Len(charts, 1)
}
