package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"not null;unique" json:"booking_id"`
	StudentID uuid.UUID `gorm:"not null;index" json:"student_id"`
	TeacherID uuid.UUID `gorm:"not null;index" json:"teacher_id"`

	TotalAmount float64 `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	// PlatformCommission and TeacherAmount are derived from
	// TotalAmount on every write and are never client-settable.
	PlatformCommission float64 `gorm:"type:numeric(10,2);not null" json:"platform_commission"`
	TeacherAmount      float64 `gorm:"type:numeric(10,2);not null" json:"teacher_amount"`

	PaymentStatus string  `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaymentMethod string  `gorm:"size:50" json:"payment_method"`
	ExternalRef   *string `gorm:"size:255;unique" json:"external_ref"`
	ReceiptURL    *string `gorm:"size:255" json:"receipt_url"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
