package services

import (
	"errors"
	"time"

	"github.com/anjiri1684/tutor_marketplace/apperrors"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitReview records a student's rating for a completed booking and
// recomputes the teacher's aggregate in the same transaction. A second
// submission for the same booking updates the existing review, so a
// booking never counts twice in the aggregate.
func SubmitReview(db *gorm.DB, bookingID, studentID uuid.UUID, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}

	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("booking not found")
			}
			return err
		}
		if booking.StudentID != studentID {
			return apperrors.PermissionDenied("you are not the student for this booking")
		}
		if booking.Status != models.BookingStatusCompleted {
			return apperrors.State("reviews can only be submitted for completed bookings")
		}

		err := tx.Where("booking_id = ?", bookingID).First(&review).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = models.Review{
				BookingID: booking.ID,
				StudentID: studentID,
				TeacherID: booking.TeacherID,
				Rating:    rating,
				Comment:   comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			review.Rating = rating
			review.Comment = comment
			if err := tx.Save(&review).Error; err != nil {
				return err
			}
		}

		return recomputeTeacherRating(tx, booking.TeacherID)
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// recomputeTeacherRating rewrites the aggregate as a single UPDATE
// reading from the source reviews, so the storage engine's row lock on
// the profile serializes concurrent aggregations for the same teacher.
func recomputeTeacherRating(tx *gorm.DB, teacherID uuid.UUID) error {
	return tx.Model(&models.Profile{}).
		Where("id = ?", teacherID).
		Updates(map[string]interface{}{
			"rating":     gorm.Expr("(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE teacher_id = ?)", teacherID),
			"updated_at": time.Now().UTC(),
		}).Error
}
