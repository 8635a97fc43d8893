// Package patient contains the core domain logic for patient health
// profiles, including the biometric calculations the planner depends on.
package patient

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender of a patient
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether the gender is a known value
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Dosha is an Ayurvedic constitutional category. Compound values name two
// doshas joined by an underscore; Primary returns the first component.
type Dosha string

const (
	DoshaVata       Dosha = "vata"
	DoshaPitta      Dosha = "pitta"
	DoshaKapha      Dosha = "kapha"
	DoshaVataPitta  Dosha = "vata_pitta"
	DoshaPittaKapha Dosha = "pitta_kapha"
	DoshaVataKapha  Dosha = "vata_kapha"
	DoshaTridoshic  Dosha = "tridoshic"
	DoshaUnknown    Dosha = "unknown"
)

// Valid reports whether the dosha is a known value
func (d Dosha) Valid() bool {
	switch d {
	case DoshaVata, DoshaPitta, DoshaKapha, DoshaVataPitta,
		DoshaPittaKapha, DoshaVataKapha, DoshaTridoshic, DoshaUnknown:
		return true
	}
	return false
}

// Primary returns the leading component of a compound dosha, e.g. vata
// for vata_pitta. Tridoshic and unknown have no primary component and
// fall back to vata, the original clinical default.
func (d Dosha) Primary() string {
	switch d {
	case DoshaTridoshic, DoshaUnknown, "":
		return string(DoshaVata)
	}
	parts := strings.SplitN(string(d), "_", 2)
	return parts[0]
}

// DietaryHabit describes the patient's dietary practice
type DietaryHabit string

const (
	DietVegetarian    DietaryHabit = "vegetarian"
	DietNonVegetarian DietaryHabit = "non_vegetarian"
	DietVegan         DietaryHabit = "vegan"
	DietEggetarian    DietaryHabit = "eggetarian"
	DietJain          DietaryHabit = "jain"
)

// ExcludesMeat reports whether the habit rules out meat and fish
func (h DietaryHabit) ExcludesMeat() bool {
	return h == DietVegetarian || h == DietVegan || h == DietEggetarian || h == DietJain
}

// ExcludesEggs reports whether the habit also rules out eggs
func (h DietaryHabit) ExcludesEggs() bool {
	return h == DietVegetarian || h == DietVegan || h == DietJain
}

// ActivityLevel describes day-to-day physical activity
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Profile is the patient aggregate. BMI and BMR are always derived from
// the stored biometrics, never accepted from input.
type Profile struct {
	id       uuid.UUID
	name     string
	age      int
	gender   Gender
	heightCm float64
	weightKg float64
	bmi      float64
	bmr      float64

	dosha         Dosha
	dietaryHabits DietaryHabit
	allergies     []string
	conditions    []string
	activityLevel ActivityLevel

	calorieOverride *float64

	createdAt time.Time
	updatedAt time.Time
}

// NewProfile creates a patient profile with validation, computing BMI
// and BMR from the supplied biometrics.
func NewProfile(name string, age int, gender Gender, heightCm, weightKg float64, dosha Dosha) (*Profile, error) {
	if len(strings.TrimSpace(name)) < 2 {
		return nil, ErrNameTooShort
	}
	if age < 0 || age > 150 {
		return nil, ErrInvalidAge
	}
	if !gender.Valid() {
		return nil, ErrInvalidGender
	}
	if heightCm < 50 || heightCm > 300 {
		return nil, ErrInvalidHeight
	}
	if weightKg < 10 || weightKg > 500 {
		return nil, ErrInvalidWeight
	}
	if !dosha.Valid() {
		return nil, ErrInvalidDosha
	}

	now := time.Now()
	p := &Profile{
		id:            uuid.New(),
		name:          name,
		age:           age,
		gender:        gender,
		heightCm:      heightCm,
		weightKg:      weightKg,
		dosha:         dosha,
		dietaryHabits: DietNonVegetarian,
		createdAt:     now,
		updatedAt:     now,
	}
	p.recompute()
	return p, nil
}

// Restore rebuilds a profile from persisted state. Derived values are
// recomputed rather than trusted from storage.
func Restore(id uuid.UUID, name string, age int, gender Gender, heightCm, weightKg float64,
	dosha Dosha, habits DietaryHabit, allergies, conditions []string,
	activity ActivityLevel, calorieOverride *float64, createdAt, updatedAt time.Time) *Profile {
	p := &Profile{
		id:              id,
		name:            name,
		age:             age,
		gender:          gender,
		heightCm:        heightCm,
		weightKg:        weightKg,
		dosha:           dosha,
		dietaryHabits:   habits,
		allergies:       allergies,
		conditions:      conditions,
		activityLevel:   activity,
		calorieOverride: calorieOverride,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
	p.recompute()
	return p
}

// ID returns the profile's unique identifier
func (p *Profile) ID() uuid.UUID { return p.id }

// Name returns the patient's name
func (p *Profile) Name() string { return p.name }

// Age returns the patient's age in years
func (p *Profile) Age() int { return p.age }

// Gender returns the patient's gender
func (p *Profile) Gender() Gender { return p.gender }

// HeightCm returns the patient's height in centimeters
func (p *Profile) HeightCm() float64 { return p.heightCm }

// WeightKg returns the patient's weight in kilograms
func (p *Profile) WeightKg() float64 { return p.weightKg }

// BMI returns the derived body mass index
func (p *Profile) BMI() float64 { return p.bmi }

// BMR returns the derived basal metabolic rate in kcal/day
func (p *Profile) BMR() float64 { return p.bmr }

// Dosha returns the patient's constitutional category
func (p *Profile) Dosha() Dosha { return p.dosha }

// DietaryHabits returns the patient's dietary practice
func (p *Profile) DietaryHabits() DietaryHabit { return p.dietaryHabits }

// Allergies returns the patient's allergen tags
func (p *Profile) Allergies() []string { return p.allergies }

// Conditions returns the patient's medical condition tags
func (p *Profile) Conditions() []string { return p.conditions }

// ActivityLevel returns the patient's activity level
func (p *Profile) ActivityLevel() ActivityLevel { return p.activityLevel }

// CalorieOverride returns the explicit calorie target, if any
func (p *Profile) CalorieOverride() *float64 { return p.calorieOverride }

// CreatedAt returns when the profile was created
func (p *Profile) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns when the profile was last modified
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// HasCondition reports whether the patient carries the given condition tag
func (p *Profile) HasCondition(tag string) bool {
	for _, c := range p.conditions {
		if strings.EqualFold(c, tag) {
			return true
		}
	}
	return false
}

// UpdateBiometrics replaces the stored biometrics and recomputes BMI
// and BMR. Derived values are never patched independently.
func (p *Profile) UpdateBiometrics(age int, gender Gender, heightCm, weightKg float64) error {
	if age < 0 || age > 150 {
		return ErrInvalidAge
	}
	if !gender.Valid() {
		return ErrInvalidGender
	}
	if heightCm < 50 || heightCm > 300 {
		return ErrInvalidHeight
	}
	if weightKg < 10 || weightKg > 500 {
		return ErrInvalidWeight
	}
	p.age = age
	p.gender = gender
	p.heightCm = heightCm
	p.weightKg = weightKg
	p.recompute()
	p.updatedAt = time.Now()
	return nil
}

// SetDietaryProfile updates habits, allergies and conditions
func (p *Profile) SetDietaryProfile(habits DietaryHabit, allergies, conditions []string) {
	p.dietaryHabits = habits
	p.allergies = allergies
	p.conditions = conditions
	p.updatedAt = time.Now()
}

// SetActivityLevel updates the activity level
func (p *Profile) SetActivityLevel(level ActivityLevel) {
	p.activityLevel = level
	p.updatedAt = time.Now()
}

// SetCalorieOverride sets or clears the explicit calorie target
func (p *Profile) SetCalorieOverride(target *float64) error {
	if target != nil && *target <= 0 {
		return ErrInvalidCalorieTarget
	}
	p.calorieOverride = target
	p.updatedAt = time.Now()
	return nil
}

// recompute derives BMI and BMR (Mifflin-St Jeor) from the current
// biometrics. The female constant is used for non-male genders.
func (p *Profile) recompute() {
	heightM := p.heightCm / 100
	p.bmi = round2(p.weightKg / (heightM * heightM))

	bmr := 10*p.weightKg + 6.25*p.heightCm - 5*float64(p.age)
	if p.gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	p.bmr = math.Round(bmr)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
