package models

import (
	"time"

	"gorm.io/gorm"
)

// A body-measurement / performance snapshot at a point in time.
// All measurement fields are optional; absent values stay zero.
type ProgressEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null" json:"user"`
	Weight float64   `json:"weight"`
	Date   time.Time `gorm:"index" json:"date"`
	Notes  string    `json:"notes"`

	// Measurements (cm)
	Chest  float64 `json:"chest,omitempty"`
	Waist  float64 `json:"waist,omitempty"`
	Hips   float64 `json:"hips,omitempty"`
	Arms   float64 `json:"arms,omitempty"`
	Thighs float64 `json:"thighs,omitempty"`

	// Performance
	BenchPress float64 `json:"benchPress,omitempty"`
	Squat      float64 `json:"squat,omitempty"`
	Deadlift   float64 `json:"deadlift,omitempty"`
	Run5k      float64 `json:"run5k,omitempty"`
}

func (p *ProgressEntry) OwnerID() uint { return p.UserID }
