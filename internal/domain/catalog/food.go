// Package catalog contains the food and recipe knowledge base types,
// including the Ayurvedic attributes used by the planning engine.
package catalog

// Rasa is the primary taste of a food in Ayurvedic classification
type Rasa string

const (
	RasaSweet      Rasa = "sweet"
	RasaSour       Rasa = "sour"
	RasaSalty      Rasa = "salty"
	RasaPungent    Rasa = "pungent"
	RasaBitter     Rasa = "bitter"
	RasaAstringent Rasa = "astringent"
)

// Rasas lists all known tastes in canonical order
var Rasas = []Rasa{RasaSweet, RasaSour, RasaSalty, RasaPungent, RasaBitter, RasaAstringent}

// Valid reports whether the rasa is one of the six known tastes
func (r Rasa) Valid() bool {
	switch r {
	case RasaSweet, RasaSour, RasaSalty, RasaPungent, RasaBitter, RasaAstringent:
		return true
	}
	return false
}

// Virya is the heating/cooling potency attributed to a food
type Virya string

const (
	ViryaHeating Virya = "heating"
	ViryaCooling Virya = "cooling"
	ViryaNeutral Virya = "neutral"
)

// Vipaka is the post-digestive taste effect attributed to a food
type Vipaka string

const (
	VipakaSweet   Vipaka = "sweet"
	VipakaSour    Vipaka = "sour"
	VipakaPungent Vipaka = "pungent"
)

// DoshaEffect describes how a food acts on one dosha
type DoshaEffect string

const (
	EffectIncreases DoshaEffect = "increases"
	EffectDecreases DoshaEffect = "decreases"
	EffectNeutral   DoshaEffect = "neutral"
)

// DoshaImpact maps each dosha to the food's effect on it
type DoshaImpact struct {
	Vata  DoshaEffect `json:"vata"`
	Pitta DoshaEffect `json:"pitta"`
	Kapha DoshaEffect `json:"kapha"`
}

// Effect returns the effect on the named dosha, defaulting to neutral
func (d DoshaImpact) Effect(dosha string) DoshaEffect {
	var e DoshaEffect
	switch dosha {
	case "vata":
		e = d.Vata
	case "pitta":
		e = d.Pitta
	case "kapha":
		e = d.Kapha
	}
	if e == "" {
		return EffectNeutral
	}
	return e
}

// Category is a food group used for meal-slot preferences and dietary filtering
type Category string

const (
	CategoryBreakfast  Category = "breakfast"
	CategoryBeverages  Category = "beverages"
	CategoryFruits     Category = "fruits"
	CategoryVegetables Category = "vegetables"
	CategoryGrains     Category = "grains"
	CategoryMainCourse Category = "main-course"
	CategoryLight      Category = "light"
	CategorySnacks     Category = "snacks"
	CategoryNuts       Category = "nuts"
	CategoryDairy      Category = "dairy"
	CategoryLegumes    Category = "legumes"
	CategoryMeat       Category = "meat"
	CategoryFish       Category = "fish"
	CategoryEggs       Category = "eggs"
	CategorySweets     Category = "sweets"
	CategoryGeneral    Category = "general"
)

// NonVegetarian reports whether the category is an animal-flesh or egg group
func (c Category) NonVegetarian() bool {
	return c == CategoryMeat || c == CategoryFish || c == CategoryEggs
}

// FoodItem is a catalog ingredient. Nutritional values are per 100g.
// Ayurvedic attributes are never left undefined at scoring time:
// ApplyDefaults runs at ingestion.
type FoodItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"` // milligrams

	Rasa        Rasa        `json:"rasa"`
	Virya       Virya       `json:"virya"`
	Guna        []string    `json:"guna"`
	Vipaka      Vipaka      `json:"vipaka"`
	DoshaImpact DoshaImpact `json:"doshaImpact"`

	Season    []string `json:"season"`
	Region    []string `json:"region"`
	Allergens []string `json:"allergens"`
}

// ApplyDefaults fills any missing Ayurvedic attributes. Rasa defaults to
// sweet, virya to neutral, guna to light, vipaka is derived from rasa,
// season and region to the "all" wildcard.
func (f *FoodItem) ApplyDefaults() {
	if !f.Rasa.Valid() {
		f.Rasa = RasaSweet
	}
	if f.Virya == "" {
		f.Virya = ViryaNeutral
	}
	if len(f.Guna) == 0 {
		f.Guna = []string{"light"}
	}
	if f.Vipaka == "" {
		f.Vipaka = vipakaFromRasa(f.Rasa)
	}
	if f.DoshaImpact.Vata == "" {
		f.DoshaImpact.Vata = EffectNeutral
	}
	if f.DoshaImpact.Pitta == "" {
		f.DoshaImpact.Pitta = EffectNeutral
	}
	if f.DoshaImpact.Kapha == "" {
		f.DoshaImpact.Kapha = EffectNeutral
	}
	if len(f.Season) == 0 {
		f.Season = []string{SeasonAll}
	}
	if len(f.Region) == 0 {
		f.Region = []string{SeasonAll}
	}
}

// vipakaFromRasa applies the classical rasa-to-vipaka derivation: sweet and
// salty ripen sweet, sour stays sour, the remaining tastes ripen pungent.
func vipakaFromRasa(r Rasa) Vipaka {
	switch r {
	case RasaSweet, RasaSalty:
		return VipakaSweet
	case RasaSour:
		return VipakaSour
	default:
		return VipakaPungent
	}
}

// SeasonAll matches any season or region
const SeasonAll = "all"

// InSeason reports whether the food is available in the given season.
// An empty or "all" season matches everything.
func (f FoodItem) InSeason(season string) bool {
	if season == "" || season == SeasonAll {
		return true
	}
	for _, s := range f.Season {
		if s == season || s == SeasonAll {
			return true
		}
	}
	return false
}

// SeasonExactly reports whether the food's season list names the given
// season directly, without relying on the "all" wildcard.
func (f FoodItem) SeasonExactly(season string) bool {
	if season == "" || season == SeasonAll {
		return false
	}
	for _, s := range f.Season {
		if s == season {
			return true
		}
	}
	return false
}

// HasAllergen reports whether the food carries any of the given allergen tags
func (f FoodItem) HasAllergen(allergies []string) bool {
	for _, a := range allergies {
		for _, tag := range f.Allergens {
			if tag == a {
				return true
			}
		}
	}
	return false
}
