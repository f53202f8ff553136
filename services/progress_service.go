package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/KaarimHussain/FitFlow-sub000/models"
)

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

type ProgressInput struct {
	Weight float64   `json:"weight" binding:"gte=0"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes"`

	Chest  float64 `json:"chest" binding:"gte=0"`
	Waist  float64 `json:"waist" binding:"gte=0"`
	Hips   float64 `json:"hips" binding:"gte=0"`
	Arms   float64 `json:"arms" binding:"gte=0"`
	Thighs float64 `json:"thighs" binding:"gte=0"`

	BenchPress float64 `json:"benchPress" binding:"gte=0"`
	Squat      float64 `json:"squat" binding:"gte=0"`
	Deadlift   float64 `json:"deadlift" binding:"gte=0"`
	Run5k      float64 `json:"run5k" binding:"gte=0"`
}

// ProgressUpdate carries a partial payload; nil fields stay unchanged.
type ProgressUpdate struct {
	Weight *float64   `json:"weight" binding:"omitempty,gte=0"`
	Date   *time.Time `json:"date"`
	Notes  *string    `json:"notes"`

	Chest  *float64 `json:"chest" binding:"omitempty,gte=0"`
	Waist  *float64 `json:"waist" binding:"omitempty,gte=0"`
	Hips   *float64 `json:"hips" binding:"omitempty,gte=0"`
	Arms   *float64 `json:"arms" binding:"omitempty,gte=0"`
	Thighs *float64 `json:"thighs" binding:"omitempty,gte=0"`

	BenchPress *float64 `json:"benchPress" binding:"omitempty,gte=0"`
	Squat      *float64 `json:"squat" binding:"omitempty,gte=0"`
	Deadlift   *float64 `json:"deadlift" binding:"omitempty,gte=0"`
	Run5k      *float64 `json:"run5k" binding:"omitempty,gte=0"`
}

func (s *ProgressService) List(userID uint) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *ProgressService) Get(userID, id uint) (*models.ProgressEntry, error) {
	return getOwned[models.ProgressEntry](s.db, id, userID)
}

func (s *ProgressService) Create(userID uint, in ProgressInput) (*models.ProgressEntry, error) {
	entry := models.ProgressEntry{
		UserID:     userID,
		Weight:     in.Weight,
		Date:       in.Date,
		Notes:      in.Notes,
		Chest:      in.Chest,
		Waist:      in.Waist,
		Hips:       in.Hips,
		Arms:       in.Arms,
		Thighs:     in.Thighs,
		BenchPress: in.BenchPress,
		Squat:      in.Squat,
		Deadlift:   in.Deadlift,
		Run5k:      in.Run5k,
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ProgressService) Update(userID, id uint, in ProgressUpdate) (*models.ProgressEntry, error) {
	entry, err := getOwned[models.ProgressEntry](s.db, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Weight != nil {
		entry.Weight = *in.Weight
	}
	if in.Date != nil {
		entry.Date = *in.Date
	}
	if in.Notes != nil {
		entry.Notes = *in.Notes
	}
	if in.Chest != nil {
		entry.Chest = *in.Chest
	}
	if in.Waist != nil {
		entry.Waist = *in.Waist
	}
	if in.Hips != nil {
		entry.Hips = *in.Hips
	}
	if in.Arms != nil {
		entry.Arms = *in.Arms
	}
	if in.Thighs != nil {
		entry.Thighs = *in.Thighs
	}
	if in.BenchPress != nil {
		entry.BenchPress = *in.BenchPress
	}
	if in.Squat != nil {
		entry.Squat = *in.Squat
	}
	if in.Deadlift != nil {
		entry.Deadlift = *in.Deadlift
	}
	if in.Run5k != nil {
		entry.Run5k = *in.Run5k
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ProgressService) Delete(userID, id uint) error {
	entry, err := getOwned[models.ProgressEntry](s.db, id, userID)
	if err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}
