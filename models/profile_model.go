package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email      string    `gorm:"size:255;not null;unique" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	FullName   string    `gorm:"size:255;not null;default:'New User'" json:"full_name"`
	Role       string    `gorm:"size:20;not null;default:'student'" json:"role"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`

	// Derived fields, maintained by the services package. Never set
	// directly from a request body.
	Rating        float64 `gorm:"default:0" json:"rating"`
	TotalStudents int     `gorm:"default:0" json:"total_students"`
	TotalLessons  int     `gorm:"default:0" json:"total_lessons"`

	HourlyRate *float64 `gorm:"type:numeric(10,2)" json:"hourly_rate"`
	Bio        *string  `gorm:"type:text" json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
