package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/anjiri1684/tutor_marketplace/apperrors"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bookingTransitions is the allowed lifecycle graph. completed and
// cancelled are terminal.
var bookingTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CreateBooking reserves a lesson slot for a student. The lesson must
// be active; the teacher id is denormalized from the lesson.
func CreateBooking(db *gorm.DB, lessonID, studentID uuid.UUID, scheduledAt time.Time, notes *string) (*models.Booking, error) {
	var lesson models.Lesson
	if err := db.First(&lesson, "id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("lesson not found")
		}
		return nil, err
	}
	if !lesson.IsActive {
		return nil, apperrors.State("this lesson is no longer offered")
	}

	booking := models.Booking{
		LessonID:    lesson.ID,
		StudentID:   studentID,
		TeacherID:   lesson.TeacherID,
		ScheduledAt: scheduledAt.UTC(),
		Status:      models.BookingStatusPending,
		Notes:       notes,
	}
	if err := db.Create(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

// TransitionBooking applies a status change, rejecting anything the
// lifecycle graph does not allow. Completing a booking refreshes the
// teacher's derived totals in the same transaction.
func TransitionBooking(db *gorm.DB, bookingID uuid.UUID, newStatus string) (*models.Booking, error) {
	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("booking not found")
			}
			return err
		}

		if !CanTransition(booking.Status, newStatus) {
			return apperrors.State(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, newStatus))
		}

		booking.Status = newStatus
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if newStatus == models.BookingStatusCompleted {
			if err := RefreshTeacherTotals(tx, booking.TeacherID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
