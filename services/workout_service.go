package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/KaarimHussain/FitFlow-sub000/models"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type ExerciseInput struct {
	Name   string  `json:"name" binding:"required"`
	Sets   int     `json:"sets" binding:"required,gte=1"`
	Reps   int     `json:"reps" binding:"required,gte=1"`
	Weight float64 `json:"weight" binding:"gte=0"`
	Notes  string  `json:"notes"`
}

type WorkoutInput struct {
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category" binding:"omitempty,oneof=strength cardio flexibility other"`
	Exercises []ExerciseInput `json:"exercises" binding:"omitempty,dive"`
	Tags      []string        `json:"tags"`
	Date      time.Time       `json:"date"`
	Duration  int             `json:"duration" binding:"gte=0"`
	Notes     string          `json:"notes"`
}

// WorkoutUpdate carries a partial payload; nil fields stay unchanged.
type WorkoutUpdate struct {
	Name      *string          `json:"name" binding:"omitempty,min=1"`
	Category  *string          `json:"category" binding:"omitempty,oneof=strength cardio flexibility other"`
	Exercises *[]ExerciseInput `json:"exercises" binding:"omitempty,dive"`
	Tags      *[]string        `json:"tags"`
	Date      *time.Time       `json:"date"`
	Duration  *int             `json:"duration" binding:"omitempty,gte=0"`
	Notes     *string          `json:"notes"`
}

func (s *WorkoutService) List(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Preload("Exercises").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Get(userID, id uint) (*models.Workout, error) {
	return getOwned[models.Workout](s.db.Preload("Exercises"), id, userID)
}

func (s *WorkoutService) Create(userID uint, in WorkoutInput) (*models.Workout, error) {
	workout := models.Workout{
		UserID:          userID,
		Name:            in.Name,
		Category:        in.Category,
		Tags:            models.StringList(in.Tags),
		Date:            in.Date,
		DurationMinutes: in.Duration,
		Notes:           in.Notes,
	}
	if workout.Category == "" {
		workout.Category = models.CategoryOther
	}
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}
	for i, ex := range in.Exercises {
		workout.Exercises = append(workout.Exercises, models.Exercise{
			Position: i,
			Name:     ex.Name,
			Sets:     ex.Sets,
			Reps:     ex.Reps,
			Weight:   ex.Weight,
			Notes:    ex.Notes,
		})
	}
	if err := s.db.Create(&workout).Error; err != nil {
		return nil, err
	}
	return s.Get(userID, workout.ID)
}

func (s *WorkoutService) Update(userID, id uint, in WorkoutUpdate) (*models.Workout, error) {
	workout, err := getOwned[models.Workout](s.db, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		workout.Name = *in.Name
	}
	if in.Category != nil {
		workout.Category = *in.Category
	}
	if in.Tags != nil {
		workout.Tags = models.StringList(*in.Tags)
	}
	if in.Date != nil {
		workout.Date = *in.Date
	}
	if in.Duration != nil {
		workout.DurationMinutes = *in.Duration
	}
	if in.Notes != nil {
		workout.Notes = *in.Notes
	}
	if err := s.db.Save(workout).Error; err != nil {
		return nil, err
	}

	// replace the exercise list wholesale when supplied
	if in.Exercises != nil {
		if err := s.db.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
			return nil, err
		}
		for i, ex := range *in.Exercises {
			e := models.Exercise{
				WorkoutID: workout.ID,
				Position:  i,
				Name:      ex.Name,
				Sets:      ex.Sets,
				Reps:      ex.Reps,
				Weight:    ex.Weight,
				Notes:     ex.Notes,
			}
			if err := s.db.Create(&e).Error; err != nil {
				return nil, err
			}
		}
	}

	return s.Get(userID, workout.ID)
}

func (s *WorkoutService) Delete(userID, id uint) error {
	workout, err := getOwned[models.Workout](s.db, id, userID)
	if err != nil {
		return err
	}
	if err := s.db.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
		return err
	}
	return s.db.Delete(workout).Error
}
