package handlers

import (
	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/anjiri1684/tutor_marketplace/policy"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateLessonRequest struct {
	SubjectID       string  `json:"subject_id" validate:"required,uuid"`
	Title           string  `json:"title" validate:"required,min=3,max=255"`
	Description     *string `json:"description"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=15,max=480"`
	Price           float64 `json:"price" validate:"min=0"`
	MaxStudents     int     `json:"max_students,omitempty" validate:"omitempty,min=1"`
	Difficulty      string  `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
}

func CreateLesson(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	if !policy.CanCreateLesson(caller, caller.ID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only teachers can publish lessons"})
	}

	var req CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	subjectID, _ := uuid.Parse(req.SubjectID)

	var subject models.Subject
	if err := database.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	maxStudents := 1
	if req.MaxStudents > 1 {
		maxStudents = req.MaxStudents
	}

	lesson := models.Lesson{
		TeacherID:       caller.ID,
		SubjectID:       subject.ID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		MaxStudents:     maxStudents,
		Difficulty:      req.Difficulty,
		IsActive:        true,
	}
	if err := database.DB.Create(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lesson"})
	}

	return c.Status(fiber.StatusCreated).JSON(lesson)
}

// ListActiveLessons is the public catalog; inactive lessons never
// appear here.
func ListActiveLessons(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Teacher").
		Preload("Subject").
		Where("is_active = ?", true)

	if subjectID := c.Query("subject_id"); subjectID != "" {
		query = query.Where("subject_id = ?", subjectID)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var lessons []models.Lesson
	query.Order("created_at desc").Find(&lessons)

	return c.JSON(lessons)
}

// GetMyLessons lists the owning teacher's lessons, inactive included.
func GetMyLessons(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	var lessons []models.Lesson
	database.DB.
		Preload("Subject").
		Where("teacher_id = ?", caller.ID).
		Order("created_at desc").
		Find(&lessons)

	return c.JSON(lessons)
}

type UpdateLessonRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=3,max=255"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Price           *float64 `json:"price" validate:"omitempty,min=0"`
	MaxStudents     *int     `json:"max_students" validate:"omitempty,min=1"`
	Difficulty      *string  `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

func UpdateLesson(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	lessonID := c.Params("lessonId")

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	if !policy.CanUpdateLesson(caller, lesson) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the owner of this lesson"})
	}

	var req UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = req.Description
	}
	if req.DurationMinutes != nil {
		lesson.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		lesson.Price = *req.Price
	}
	if req.MaxStudents != nil {
		lesson.MaxStudents = *req.MaxStudents
	}
	if req.Difficulty != nil {
		lesson.Difficulty = *req.Difficulty
	}

	database.DB.Save(&lesson)

	return c.JSON(lesson)
}

// DeactivateLesson soft-removes a lesson from the catalog. There is no
// hard delete; existing bookings keep their reference.
func DeactivateLesson(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	lessonID := c.Params("lessonId")

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	if !policy.CanUpdateLesson(caller, lesson) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the owner of this lesson"})
	}

	lesson.IsActive = false
	database.DB.Save(&lesson)

	return c.JSON(fiber.Map{"message": "Lesson deactivated"})
}
