package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/KaarimHussain/FitFlow-sub000/models"
)

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

type FoodItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
	Unit     string  `json:"unit"`
}

type NutritionInput struct {
	MealType      string          `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack other"`
	FoodItems     []FoodItemInput `json:"foodItems" binding:"omitempty,dive"`
	TotalCalories *float64        `json:"totalCalories" binding:"omitempty,gte=0"`
	Date          time.Time       `json:"date"`
	Notes         string          `json:"notes"`
}

// NutritionUpdate carries a partial payload; nil fields stay unchanged.
type NutritionUpdate struct {
	MealType      *string          `json:"mealType" binding:"omitempty,oneof=breakfast lunch dinner snack other"`
	FoodItems     *[]FoodItemInput `json:"foodItems" binding:"omitempty,dive"`
	TotalCalories *float64         `json:"totalCalories" binding:"omitempty,gte=0"`
	Date          *time.Time       `json:"date"`
	Notes         *string          `json:"notes"`
}

// sumCalories derives the entry total from its items. Used identically
// by the create and update paths so the two can never drift.
func sumCalories(items []FoodItemInput) float64 {
	var total float64
	for _, it := range items {
		total += it.Calories
	}
	return total
}

func (s *NutritionService) List(userID uint) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := s.db.
		Preload("FoodItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *NutritionService) Get(userID, id uint) (*models.NutritionEntry, error) {
	return getOwned[models.NutritionEntry](s.db.Preload("FoodItems"), id, userID)
}

func (s *NutritionService) Create(userID uint, in NutritionInput) (*models.NutritionEntry, error) {
	entry := models.NutritionEntry{
		UserID:   userID,
		MealType: in.MealType,
		Date:     in.Date,
		Notes:    in.Notes,
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if in.TotalCalories != nil {
		entry.TotalCalories = *in.TotalCalories
	} else {
		entry.TotalCalories = sumCalories(in.FoodItems)
	}
	for i, it := range in.FoodItems {
		entry.FoodItems = append(entry.FoodItems, models.FoodItem{
			Position: i,
			Name:     it.Name,
			Calories: it.Calories,
			Protein:  it.Protein,
			Carbs:    it.Carbs,
			Fat:      it.Fat,
			Quantity: it.Quantity,
			Unit:     it.Unit,
		})
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return s.Get(userID, entry.ID)
}

func (s *NutritionService) Update(userID, id uint, in NutritionUpdate) (*models.NutritionEntry, error) {
	entry, err := getOwned[models.NutritionEntry](s.db, id, userID)
	if err != nil {
		return nil, err
	}

	if in.MealType != nil {
		entry.MealType = *in.MealType
	}
	if in.Date != nil {
		entry.Date = *in.Date
	}
	if in.Notes != nil {
		entry.Notes = *in.Notes
	}
	switch {
	case in.TotalCalories != nil:
		entry.TotalCalories = *in.TotalCalories
	case in.FoodItems != nil:
		// items changed and no explicit total supplied: re-derive
		entry.TotalCalories = sumCalories(*in.FoodItems)
	}
	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}

	if in.FoodItems != nil {
		if err := s.db.Where("nutrition_entry_id = ?", entry.ID).Delete(&models.FoodItem{}).Error; err != nil {
			return nil, err
		}
		for i, it := range *in.FoodItems {
			fi := models.FoodItem{
				NutritionEntryID: entry.ID,
				Position:         i,
				Name:             it.Name,
				Calories:         it.Calories,
				Protein:          it.Protein,
				Carbs:            it.Carbs,
				Fat:              it.Fat,
				Quantity:         it.Quantity,
				Unit:             it.Unit,
			}
			if err := s.db.Create(&fi).Error; err != nil {
				return nil, err
			}
		}
	}

	return s.Get(userID, entry.ID)
}

func (s *NutritionService) Delete(userID, id uint) error {
	entry, err := getOwned[models.NutritionEntry](s.db, id, userID)
	if err != nil {
		return err
	}
	if err := s.db.Where("nutrition_entry_id = ?", entry.ID).Delete(&models.FoodItem{}).Error; err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}
