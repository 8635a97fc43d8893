// Package gorm provides GORM model definitions and repository
// implementations backing the planner's persistence ports.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientModel represents the GORM model for patient profiles
type PatientModel struct {
	ID              uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Name            string      `gorm:"type:varchar(255);not null"`
	Age             int         `gorm:"not null"`
	Gender          string      `gorm:"type:varchar(20);not null"`
	HeightCm        float64     `gorm:"not null"`
	WeightKg        float64     `gorm:"not null"`
	Dosha           string      `gorm:"type:varchar(30);not null;index"`
	DietaryHabits   string      `gorm:"type:varchar(30)"`
	Allergies       StringSlice `gorm:"type:json"`
	Conditions      StringSlice `gorm:"type:json"`
	ActivityLevel   string      `gorm:"type:varchar(30)"`
	CalorieOverride *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name
func (PatientModel) TableName() string {
	return "patients"
}

// BeforeCreate hook for PatientModel
func (p *PatientModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// FoodModel represents the GORM model for catalog foods
type FoodModel struct {
	ID       string `gorm:"type:varchar(64);primaryKey"`
	Name     string `gorm:"type:varchar(255);not null;index"`
	Category string `gorm:"type:varchar(50);index"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64

	Rasa        string      `gorm:"type:varchar(20)"`
	Virya       string      `gorm:"type:varchar(20)"`
	Guna        StringSlice `gorm:"type:json"`
	Vipaka      string      `gorm:"type:varchar(20)"`
	DoshaImpact JSONField   `gorm:"type:json"`

	Season    StringSlice `gorm:"type:json"`
	Region    StringSlice `gorm:"type:json"`
	Allergens StringSlice `gorm:"type:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (FoodModel) TableName() string {
	return "foods"
}

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID               string      `gorm:"type:varchar(64);primaryKey"`
	Name             string      `gorm:"type:varchar(255);not null;index"`
	MealType         string      `gorm:"type:varchar(30);index"`
	DoshaSuitability JSONField   `gorm:"type:json"`
	Season           StringSlice `gorm:"type:json"`
	Allergens        StringSlice `gorm:"type:json"`
	CookTimeMinutes  int         `gorm:"default:0"`
	Ingredients      StringSlice `gorm:"type:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the default table name
func (RecipeModel) TableName() string {
	return "recipes"
}

// ChartModel represents the GORM model for diet charts. Meals are stored
// as a JSON document; nutrition and balance are recomputed on load.
type ChartModel struct {
	ID           uuid.UUID   `gorm:"type:char(36);primaryKey"`
	PatientID    string      `gorm:"type:char(36);not null;index"`
	Name         string      `gorm:"type:varchar(255)"`
	Status       string      `gorm:"type:varchar(20);index"`
	Goals        StringSlice `gorm:"type:json"`
	Dietitian    string      `gorm:"type:varchar(255)"`
	Meals        []byte      `gorm:"type:json"`
	PrimaryDosha string      `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (ChartModel) TableName() string {
	return "diet_charts"
}

// BeforeCreate hook for ChartModel
func (c *ChartModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// JSONField custom type for handling JSON fields
type JSONField map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONField) Scan(value interface{}) error {
	if value == nil {
		*j = JSONField{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSONField", value)
	}
}

// Value implements the driver.Valuer interface
func (j JSONField) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return json.Marshal(j)
}

// AutoMigrate creates or updates the schema for every model
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&PatientModel{},
		&FoodModel{},
		&RecipeModel{},
		&ChartModel{},
	)
}
