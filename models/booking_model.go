package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LessonID  uuid.UUID `gorm:"not null;index" json:"lesson_id"`
	StudentID uuid.UUID `gorm:"not null;index" json:"student_id"`
	// TeacherID is denormalized from the lesson so participant checks
	// never need a join.
	TeacherID   uuid.UUID `gorm:"not null;index" json:"teacher_id"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	MeetingLink *string   `gorm:"size:255" json:"meeting_link"`
	Notes       *string   `gorm:"type:text" json:"notes"`

	Lesson  Lesson  `gorm:"foreignkey:LessonID" json:"lesson,omitempty"`
	Student Profile `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Teacher Profile `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
