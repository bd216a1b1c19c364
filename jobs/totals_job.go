package jobs

import (
	"log"

	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/anjiri1684/tutor_marketplace/services"
	"github.com/google/uuid"
)

// RefreshAllTeacherTotals sweeps every teacher profile and recounts
// the derived totals from source. The transactional refresh on booking
// completion keeps them current; this catches any drift.
func RefreshAllTeacherTotals() {
	log.Println("Running job: RefreshAllTeacherTotals...")

	var teacherIDs []uuid.UUID
	err := database.DB.Model(&models.Profile{}).
		Where("role = ?", models.RoleTeacher).
		Pluck("id", &teacherIDs).Error
	if err != nil {
		log.Printf("Error listing teachers for totals refresh: %v", err)
		return
	}

	refreshed := 0
	for _, teacherID := range teacherIDs {
		if err := services.RefreshTeacherTotals(database.DB, teacherID); err != nil {
			log.Printf("Error refreshing totals for teacher %s: %v", teacherID, err)
			continue
		}
		refreshed++
	}

	log.Printf("Refreshed totals for %d teacher(s).", refreshed)
}
