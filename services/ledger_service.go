package services

import (
	"errors"
	"math"

	"github.com/anjiri1684/tutor_marketplace/apperrors"
	config "github.com/anjiri1684/tutor_marketplace/configs"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SplitAmount derives the platform commission and the teacher payout
// from a settled total. The commission is rounded to cents and the
// payout is the exact remainder, so the two always sum back to total.
func SplitAmount(total, rate float64) (commission, teacherAmount float64) {
	commission = math.Round(total*rate*100) / 100
	return commission, total - commission
}

type RecordPaymentInput struct {
	TotalAmount float64
	Method      string
	ExternalRef *string
	Status      string
}

// RecordPayment creates or updates the single transaction for a
// booking. The commission split is recomputed from the total on every
// write; whatever a caller supplied for the derived fields is ignored.
func RecordPayment(db *gorm.DB, bookingID uuid.UUID, in RecordPaymentInput) (*models.Transaction, error) {
	var txn models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("booking not found")
			}
			return err
		}

		commission, teacherAmount := SplitAmount(in.TotalAmount, config.CommissionRate())

		err := tx.Where("booking_id = ?", bookingID).First(&txn).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			txn = models.Transaction{
				BookingID:          booking.ID,
				StudentID:          booking.StudentID,
				TeacherID:          booking.TeacherID,
				TotalAmount:        in.TotalAmount,
				PlatformCommission: commission,
				TeacherAmount:      teacherAmount,
				PaymentStatus:      in.Status,
				PaymentMethod:      in.Method,
				ExternalRef:        in.ExternalRef,
			}
			return tx.Create(&txn).Error
		}
		if err != nil {
			return err
		}

		txn.TotalAmount = in.TotalAmount
		txn.PlatformCommission = commission
		txn.TeacherAmount = teacherAmount
		txn.PaymentStatus = in.Status
		txn.PaymentMethod = in.Method
		if in.ExternalRef != nil {
			txn.ExternalRef = in.ExternalRef
		}
		return tx.Save(&txn).Error
	})
	if err != nil {
		return nil, err
	}

	return &txn, nil
}
