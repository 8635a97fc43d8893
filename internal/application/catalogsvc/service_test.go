package catalogsvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nutriveda/planner/internal/application/catalogsvc"
	"github.com/nutriveda/planner/internal/domain/catalog"
	"github.com/nutriveda/planner/internal/ports/inbound"
	apperrors "github.com/nutriveda/planner/pkg/errors"
	"github.com/nutriveda/planner/pkg/logger"
	"github.com/nutriveda/planner/test/testutils"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	foodRepo *testutils.MockFoodRepository
	service  inbound.CatalogService
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.foodRepo = new(testutils.MockFoodRepository)
	s.service = catalogsvc.NewService(s.foodRepo, logger.NewNop())
}

func (s *CatalogServiceTestSuite) TestIngestFood_ShouldDefaultAyurvedicAttributes() {
	s.foodRepo.On("Create", mock.Anything, mock.AnythingOfType("*catalog.FoodItem")).Return(nil)

	f, err := s.service.IngestFood(context.Background(), inbound.IngestFoodCommand{
		Name:     "Brown Rice",
		Category: "grains",
		Calories: 111,
		Protein:  2.6,
		Carbs:    23,
	})

	s.Require().NoError(err)
	s.Equal(catalog.RasaSweet, f.Rasa)
	s.Equal(catalog.ViryaNeutral, f.Virya)
	s.Equal(catalog.VipakaSweet, f.Vipaka)
	s.Equal([]string{"light"}, f.Guna)
	s.Equal(catalog.EffectNeutral, f.DoshaImpact.Vata)
	s.Equal([]string{"all"}, f.Season)
	s.NotEmpty(f.ID)
}

func (s *CatalogServiceTestSuite) TestIngestFood_ShouldDeriveVipakaFromRasa() {
	s.foodRepo.On("Create", mock.Anything, mock.AnythingOfType("*catalog.FoodItem")).Return(nil)

	testCases := []struct {
		rasa string
		want catalog.Vipaka
	}{
		{"sweet", catalog.VipakaSweet},
		{"salty", catalog.VipakaSweet},
		{"sour", catalog.VipakaSour},
		{"pungent", catalog.VipakaPungent},
		{"bitter", catalog.VipakaPungent},
		{"astringent", catalog.VipakaPungent},
	}
	for _, tc := range testCases {
		f, err := s.service.IngestFood(context.Background(), inbound.IngestFoodCommand{
			Name: "Sample", Category: "general", Rasa: tc.rasa,
		})
		s.Require().NoError(err)
		s.Equal(tc.want, f.Vipaka, tc.rasa)
	}
}

func (s *CatalogServiceTestSuite) TestIngestFood_ShouldKeepExplicitAttributes() {
	s.foodRepo.On("Create", mock.Anything, mock.AnythingOfType("*catalog.FoodItem")).Return(nil)

	f, err := s.service.IngestFood(context.Background(), inbound.IngestFoodCommand{
		Name:     "Ginger Tea",
		Category: "beverages",
		Rasa:     "pungent",
		Virya:    "heating",
		Vipaka:   "sweet",
		DoshaImpact: &catalog.DoshaImpact{
			Vata:  catalog.EffectDecreases,
			Kapha: catalog.EffectDecreases,
		},
		Season: []string{"winter"},
	})

	s.Require().NoError(err)
	s.Equal(catalog.RasaPungent, f.Rasa)
	s.Equal(catalog.ViryaHeating, f.Virya)
	s.Equal(catalog.VipakaSweet, f.Vipaka)
	s.Equal(catalog.EffectDecreases, f.DoshaImpact.Vata)
	// unset doshas still default to neutral
	s.Equal(catalog.EffectNeutral, f.DoshaImpact.Pitta)
	s.Equal([]string{"winter"}, f.Season)
}

func (s *CatalogServiceTestSuite) TestIngestFood_ShouldRejectInvalidCommand() {
	_, err := s.service.IngestFood(context.Background(), inbound.IngestFoodCommand{
		Category: "grains",
	})

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodeValidationFailed))
}

func (s *CatalogServiceTestSuite) TestIngestFoods_ShouldRejectWholeBatchOnBadEntry() {
	_, err := s.service.IngestFoods(context.Background(), []inbound.IngestFoodCommand{
		{Name: "Good", Category: "grains"},
		{Category: "grains"},
	})

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodeValidationFailed))
	s.foodRepo.AssertNotCalled(s.T(), "CreateBatch", mock.Anything, mock.Anything)
}

func (s *CatalogServiceTestSuite) TestIngestFoods_ShouldPersistBatch() {
	s.foodRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]catalog.FoodItem")).Return(nil)

	foods, err := s.service.IngestFoods(context.Background(), []inbound.IngestFoodCommand{
		{Name: "Rice", Category: "grains"},
		{Name: "Moong Dal", Category: "legumes"},
	})

	s.Require().NoError(err)
	s.Len(foods, 2)
	s.foodRepo.AssertExpectations(s.T())
}
