package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Lesson struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TeacherID       uuid.UUID `gorm:"not null;index" json:"teacher_id"`
	SubjectID       uuid.UUID `gorm:"not null;index" json:"subject_id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Description     *string   `gorm:"type:text" json:"description"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Price           float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	MaxStudents     int       `gorm:"default:1" json:"max_students"`
	Difficulty      string    `gorm:"size:20;not null;default:'beginner'" json:"difficulty"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`

	Teacher Profile `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`
	Subject Subject `gorm:"foreignkey:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
