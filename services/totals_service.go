package services

import (
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTeacherTotals recounts a teacher's derived totals from
// completed bookings: lessons taught and distinct students served.
func RefreshTeacherTotals(db *gorm.DB, teacherID uuid.UUID) error {
	var totalLessons int64
	if err := db.Model(&models.Booking{}).
		Where("teacher_id = ? AND status = ?", teacherID, models.BookingStatusCompleted).
		Count(&totalLessons).Error; err != nil {
		return err
	}

	var totalStudents int64
	if err := db.Model(&models.Booking{}).
		Where("teacher_id = ? AND status = ?", teacherID, models.BookingStatusCompleted).
		Distinct("student_id").
		Count(&totalStudents).Error; err != nil {
		return err
	}

	return db.Model(&models.Profile{}).
		Where("id = ?", teacherID).
		Updates(map[string]interface{}{
			"total_lessons":  totalLessons,
			"total_students": totalStudents,
		}).Error
}
