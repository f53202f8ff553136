package services

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/KaarimHussain/FitFlow-sub000/models"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type Stats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalWorkouts     int64 `json:"totalWorkouts"`
	TotalNutrition    int64 `json:"totalNutrition"`
	TotalProgress     int64 `json:"totalProgress"`
	ActiveUsers       int64 `json:"activeUsers"`
	NewUsersThisMonth int64 `json:"newUsersThisMonth"`
}

// AdminUser is the public projection annotated with resource counts.
type AdminUser struct {
	models.PublicUser
	WorkoutCount   int64 `json:"workoutCount"`
	NutritionCount int64 `json:"nutritionCount"`
	ProgressCount  int64 `json:"progressCount"`
}

// OwnerInfo annotates a cross-user resource row with who owns it.
type OwnerInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type OwnedWorkout struct {
	models.Workout
	Owner OwnerInfo `json:"owner"`
}

type OwnedNutrition struct {
	models.NutritionEntry
	Owner OwnerInfo `json:"owner"`
}

type OwnedProgress struct {
	models.ProgressEntry
	Owner OwnerInfo `json:"owner"`
}

type UserDetails struct {
	User      AdminUser               `json:"user"`
	Workouts  []models.Workout        `json:"workouts"`
	Nutrition []models.NutritionEntry `json:"nutrition"`
	Progress  []models.ProgressEntry  `json:"progress"`
}

// Stats aggregates platform-wide counts. "Active" approximates to users
// created in the last 30 days; there is no real login tracking.
func (s *AdminService) Stats() (*Stats, error) {
	var out Stats
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&out.TotalUsers, s.db.Model(&models.User{})},
		{&out.TotalWorkouts, s.db.Model(&models.Workout{})},
		{&out.TotalNutrition, s.db.Model(&models.NutritionEntry{})},
		{&out.TotalProgress, s.db.Model(&models.ProgressEntry{})},
		{&out.ActiveUsers, s.db.Model(&models.User{}).Where("created_at >= ?", now.AddDate(0, 0, -30))},
		{&out.NewUsersThisMonth, s.db.Model(&models.User{}).Where("created_at >= ?", monthStart)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (s *AdminService) countsFor(userID uint) (w, n, p int64, err error) {
	if err = s.db.Model(&models.Workout{}).Where("user_id = ?", userID).Count(&w).Error; err != nil {
		return
	}
	if err = s.db.Model(&models.NutritionEntry{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return
	}
	err = s.db.Model(&models.ProgressEntry{}).Where("user_id = ?", userID).Count(&p).Error
	return
}

func (s *AdminService) ListUsers() ([]AdminUser, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]AdminUser, 0, len(users))
	for i := range users {
		w, n, p, err := s.countsFor(users[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, AdminUser{
			PublicUser:     users[i].Public(),
			WorkoutCount:   w,
			NutritionCount: n,
			ProgressCount:  p,
		})
	}
	return out, nil
}

// ownerIndex loads owner info for a set of user ids in one query.
func (s *AdminService) ownerIndex(userIDs []uint) (map[uint]OwnerInfo, error) {
	idx := map[uint]OwnerInfo{}
	if len(userIDs) == 0 {
		return idx, nil
	}
	var users []models.User
	if err := s.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		idx[u.ID] = OwnerInfo{Username: u.Username, Email: u.Email}
	}
	return idx, nil
}

func (s *AdminService) ListAllWorkouts() ([]OwnedWorkout, error) {
	var workouts []models.Workout
	if err := s.db.Preload("Exercises").Order("created_at DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.UserID)
	}
	owners, err := s.ownerIndex(ids)
	if err != nil {
		return nil, err
	}
	out := make([]OwnedWorkout, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, OwnedWorkout{Workout: w, Owner: owners[w.UserID]})
	}
	return out, nil
}

func (s *AdminService) ListAllNutrition() ([]OwnedNutrition, error) {
	var entries []models.NutritionEntry
	if err := s.db.Preload("FoodItems").Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	owners, err := s.ownerIndex(ids)
	if err != nil {
		return nil, err
	}
	out := make([]OwnedNutrition, 0, len(entries))
	for _, e := range entries {
		out = append(out, OwnedNutrition{NutritionEntry: e, Owner: owners[e.UserID]})
	}
	return out, nil
}

func (s *AdminService) ListAllProgress() ([]OwnedProgress, error) {
	var entries []models.ProgressEntry
	if err := s.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	owners, err := s.ownerIndex(ids)
	if err != nil {
		return nil, err
	}
	out := make([]OwnedProgress, 0, len(entries))
	for _, e := range entries {
		out = append(out, OwnedProgress{ProgressEntry: e, Owner: owners[e.UserID]})
	}
	return out, nil
}

// DeleteUser removes a user and, sequentially, everything they own.
// Owned resources go first so a partial failure leaves a retryable
// state (user intact, some data gone) instead of orphaned rows.
func (s *AdminService) DeleteUser(callerID, id uint) error {
	if callerID == id {
		return ErrSelfDelete
	}
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	workoutIDs := s.db.Model(&models.Workout{}).Select("id").Where("user_id = ?", id)
	if err := s.db.Where("workout_id IN (?)", workoutIDs).Delete(&models.Exercise{}).Error; err != nil {
		return err
	}
	if err := s.db.Where("user_id = ?", id).Delete(&models.Workout{}).Error; err != nil {
		return err
	}

	entryIDs := s.db.Model(&models.NutritionEntry{}).Select("id").Where("user_id = ?", id)
	if err := s.db.Where("nutrition_entry_id IN (?)", entryIDs).Delete(&models.FoodItem{}).Error; err != nil {
		return err
	}
	if err := s.db.Where("user_id = ?", id).Delete(&models.NutritionEntry{}).Error; err != nil {
		return err
	}

	if err := s.db.Where("user_id = ?", id).Delete(&models.ProgressEntry{}).Error; err != nil {
		return err
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return err
	}
	log.Info().Uint("user_id", id).Uint("deleted_by", callerID).Msg("user deleted with cascade")
	return nil
}

func (s *AdminService) UpdateUserRole(id uint, role string) (*models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Role = role
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AdminService) GetUserDetails(id uint) (*UserDetails, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var workouts []models.Workout
	if err := s.db.Preload("Exercises").Where("user_id = ?", id).Order("created_at DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	var nutrition []models.NutritionEntry
	if err := s.db.Preload("FoodItems").Where("user_id = ?", id).Order("created_at DESC").Find(&nutrition).Error; err != nil {
		return nil, err
	}
	var progress []models.ProgressEntry
	if err := s.db.Where("user_id = ?", id).Order("created_at DESC").Find(&progress).Error; err != nil {
		return nil, err
	}

	return &UserDetails{
		User: AdminUser{
			PublicUser:     user.Public(),
			WorkoutCount:   int64(len(workouts)),
			NutritionCount: int64(len(nutrition)),
			ProgressCount:  int64(len(progress)),
		},
		Workouts:  workouts,
		Nutrition: nutrition,
		Progress:  progress,
	}, nil
}
