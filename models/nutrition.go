package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealOther     = "other"
)

// One logged meal with its ordered food items.
type NutritionEntry struct {
	gorm.Model
	UserID        uint       `gorm:"index;not null" json:"user"`
	MealType      string     `gorm:"not null" json:"mealType"`
	FoodItems     []FoodItem `json:"foodItems"`
	TotalCalories float64    `json:"totalCalories"`
	Date          time.Time  `gorm:"index" json:"date"`
	Notes         string     `json:"notes"`
}

// FoodItem stores the nutrition snapshot for a single item.
type FoodItem struct {
	gorm.Model
	NutritionEntryID uint    `gorm:"index;not null" json:"-"`
	Position         int     `json:"-"`
	Name             string  `gorm:"not null" json:"name"`
	Calories         float64 `json:"calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit,omitempty"`
}

func (n *NutritionEntry) OwnerID() uint { return n.UserID }
