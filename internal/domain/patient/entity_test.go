package patient_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nutriveda/planner/internal/domain/patient"
)

type ProfileTestSuite struct {
	suite.Suite
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileTestSuite))
}

func (s *ProfileTestSuite) TestNewProfile_ShouldComputeDerivedValues() {
	// Arrange & Act
	p, err := patient.NewProfile("Asha Rao", 30, patient.GenderFemale, 160, 55, patient.DoshaPitta)

	// Assert
	s.Require().NoError(err)
	s.Equal(21.48, p.BMI())
	// 10*55 + 6.25*160 - 5*30 - 161 = 1239
	s.Equal(1239.0, p.BMR())
	s.NotEqual("", p.ID().String())
}

func (s *ProfileTestSuite) TestNewProfile_ShouldUseMaleConstant() {
	p, err := patient.NewProfile("Ravi Kumar", 40, patient.GenderMale, 175, 80, patient.DoshaKapha)

	s.Require().NoError(err)
	// 10*80 + 6.25*175 - 5*40 + 5 = 1699 (rounded from 1698.75)
	s.Equal(1699.0, p.BMR())
}

func (s *ProfileTestSuite) TestNewProfile_ShouldTreatOtherGenderLikeFemale() {
	a, err := patient.NewProfile("Patient A", 30, patient.GenderFemale, 160, 55, patient.DoshaVata)
	s.Require().NoError(err)
	b, err := patient.NewProfile("Patient B", 30, patient.GenderOther, 160, 55, patient.DoshaVata)
	s.Require().NoError(err)

	s.Equal(a.BMR(), b.BMR())
}

func (s *ProfileTestSuite) TestNewProfile_ShouldRejectInvalidInput() {
	testCases := []struct {
		name     string
		age      int
		gender   patient.Gender
		heightCm float64
		weightKg float64
		dosha    patient.Dosha
		wantErr  error
	}{
		{"short name", 30, patient.GenderMale, 170, 70, patient.DoshaVata, patient.ErrNameTooShort},
		{"Valid Name", -1, patient.GenderMale, 170, 70, patient.DoshaVata, patient.ErrInvalidAge},
		{"Valid Name", 151, patient.GenderMale, 170, 70, patient.DoshaVata, patient.ErrInvalidAge},
		{"Valid Name", 30, patient.Gender("robot"), 170, 70, patient.DoshaVata, patient.ErrInvalidGender},
		{"Valid Name", 30, patient.GenderMale, 40, 70, patient.DoshaVata, patient.ErrInvalidHeight},
		{"Valid Name", 30, patient.GenderMale, 170, 600, patient.DoshaVata, patient.ErrInvalidWeight},
		{"Valid Name", 30, patient.GenderMale, 170, 70, patient.Dosha("fire"), patient.ErrInvalidDosha},
	}

	for _, tc := range testCases {
		_, err := patient.NewProfile(tc.name, tc.age, tc.gender, tc.heightCm, tc.weightKg, tc.dosha)
		s.ErrorIs(err, tc.wantErr)
	}
}

func (s *ProfileTestSuite) TestUpdateBiometrics_ShouldRecomputeBMIAndBMR() {
	p, err := patient.NewProfile("Asha Rao", 30, patient.GenderFemale, 160, 55, patient.DoshaPitta)
	s.Require().NoError(err)
	before := p.BMR()

	err = p.UpdateBiometrics(30, patient.GenderFemale, 160, 60)

	s.Require().NoError(err)
	s.NotEqual(before, p.BMR())
	s.Equal(23.44, p.BMI())
}

func (s *ProfileTestSuite) TestDoshaPrimary_ShouldReturnFirstComponent() {
	s.Equal("vata", patient.DoshaVataPitta.Primary())
	s.Equal("pitta", patient.DoshaPittaKapha.Primary())
	s.Equal("kapha", patient.DoshaKapha.Primary())
	s.Equal("vata", patient.DoshaTridoshic.Primary())
	s.Equal("vata", patient.DoshaUnknown.Primary())
}

func (s *ProfileTestSuite) TestDietaryHabit_ShouldClassifyExclusions() {
	s.True(patient.DietVegan.ExcludesMeat())
	s.True(patient.DietVegan.ExcludesEggs())
	s.True(patient.DietEggetarian.ExcludesMeat())
	s.False(patient.DietEggetarian.ExcludesEggs())
	s.False(patient.DietNonVegetarian.ExcludesMeat())
	s.True(patient.DietJain.ExcludesEggs())
}

func (s *ProfileTestSuite) TestSetCalorieOverride_ShouldRejectNonPositive() {
	p, err := patient.NewProfile("Asha Rao", 30, patient.GenderFemale, 160, 55, patient.DoshaPitta)
	s.Require().NoError(err)

	bad := -100.0
	s.ErrorIs(p.SetCalorieOverride(&bad), patient.ErrInvalidCalorieTarget)

	good := 1800.0
	s.Require().NoError(p.SetCalorieOverride(&good))
	s.Require().NotNil(p.CalorieOverride())
	s.Equal(1800.0, *p.CalorieOverride())

	s.Require().NoError(p.SetCalorieOverride(nil))
	s.Nil(p.CalorieOverride())
}

func (s *ProfileTestSuite) TestHasCondition_ShouldMatchCaseInsensitively() {
	p, err := patient.NewProfile("Asha Rao", 30, patient.GenderFemale, 160, 55, patient.DoshaPitta)
	s.Require().NoError(err)
	p.SetDietaryProfile(patient.DietVegetarian, nil, []string{"Diabetes"})

	s.True(p.HasCondition("diabetes"))
	s.False(p.HasCondition("hypertension"))
}
