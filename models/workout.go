package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Workout categories.
const (
	CategoryStrength    = "strength"
	CategoryCardio      = "cardio"
	CategoryFlexibility = "flexibility"
	CategoryOther       = "other"
)

// StringList is stored as a comma-joined text column but serializes
// to clients as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

func (l *StringList) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, ",")
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// One workout session with its ordered exercises.
type Workout struct {
	gorm.Model
	UserID          uint       `gorm:"index;not null" json:"user"`
	Name            string     `gorm:"not null" json:"name"`
	Category        string     `gorm:"not null;default:other" json:"category"`
	Exercises       []Exercise `json:"exercises"`
	Tags            StringList `gorm:"type:text" json:"tags"`
	Date            time.Time  `gorm:"index" json:"date"`
	DurationMinutes int        `json:"duration"`
	Notes           string     `json:"notes"`
}

type Exercise struct {
	gorm.Model
	WorkoutID uint    `gorm:"index;not null" json:"-"`
	Position  int     `json:"-"`
	Name      string  `gorm:"not null" json:"name"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Notes     string  `json:"notes,omitempty"`
}

func (w *Workout) OwnerID() uint { return w.UserID }
