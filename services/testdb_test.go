package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Profile{},
		&models.Subject{},
		&models.Lesson{},
		&models.Booking{},
		&models.Transaction{},
		&models.Review{},
		&models.LessonMaterial{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, role string) models.Profile {
	t.Helper()

	profile := models.Profile{
		Email:    fmt.Sprintf("%s-%s@example.com", role, uuid.New().String()[:8]),
		Password: "hashed",
		FullName: "Test " + role,
		Role:     role,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to seed %s profile: %v", role, err)
	}
	return profile
}

func seedLesson(t *testing.T, db *gorm.DB, teacherID uuid.UUID, price float64) models.Lesson {
	t.Helper()

	subject := models.Subject{Name: "Subject " + uuid.New().String()[:8]}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("failed to seed subject: %v", err)
	}

	lesson := models.Lesson{
		TeacherID:       teacherID,
		SubjectID:       subject.ID,
		Title:           "Algebra Basics",
		DurationMinutes: 60,
		Price:           price,
		MaxStudents:     1,
		Difficulty:      models.DifficultyBeginner,
		IsActive:        true,
	}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("failed to seed lesson: %v", err)
	}
	return lesson
}

func seedBooking(t *testing.T, db *gorm.DB, lesson models.Lesson, studentID uuid.UUID, status string) models.Booking {
	t.Helper()

	booking := models.Booking{
		LessonID:    lesson.ID,
		StudentID:   studentID,
		TeacherID:   lesson.TeacherID,
		ScheduledAt: time.Now().UTC().Add(24 * time.Hour),
		Status:      status,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return booking
}
