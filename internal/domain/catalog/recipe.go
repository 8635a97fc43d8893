package catalog

// MealType classifies a recipe by the meal it is intended for
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// DoshaSuitability flags which constitutions a recipe suits
type DoshaSuitability struct {
	Vata  bool `json:"vata"`
	Pitta bool `json:"pitta"`
	Kapha bool `json:"kapha"`
}

// SuitsDosha reports whether the recipe suits the named dosha
func (s DoshaSuitability) SuitsDosha(dosha string) bool {
	switch dosha {
	case "vata":
		return s.Vata
	case "pitta":
		return s.Pitta
	case "kapha":
		return s.Kapha
	}
	return false
}

// RecipeItem is a composed dish in the catalog. Ingredients reference
// FoodItem ids and may be empty when the recipe is unresolved.
type RecipeItem struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	MealType         MealType         `json:"mealType"`
	DoshaSuitability DoshaSuitability `json:"doshaSuitability"`
	Season           []string         `json:"season"`
	Allergens        []string         `json:"allergens"`
	CookTimeMinutes  int              `json:"cookTimeMinutes"`
	Ingredients      []string         `json:"ingredients,omitempty"`
}
