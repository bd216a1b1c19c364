package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonMaterial struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LessonID uuid.UUID `gorm:"not null;index" json:"lesson_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	FileURL  string    `gorm:"type:text;not null" json:"file_url"`
	FileType string    `gorm:"size:50" json:"file_type"`

	Lesson Lesson `gorm:"foreignkey:LessonID" json:"lesson,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *LessonMaterial) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
