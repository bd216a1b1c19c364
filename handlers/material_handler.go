package handlers

import (
	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/anjiri1684/tutor_marketplace/policy"
	"github.com/gofiber/fiber/v2"
)

type AddMaterialRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=255"`
	FileURL  string `json:"file_url" validate:"required,url"`
	FileType string `json:"file_type" validate:"required,max=50"`
}

func AddLessonMaterial(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	lessonID := c.Params("lessonId")

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	if !policy.CanAddMaterial(caller, lesson) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the owner of this lesson"})
	}

	var req AddMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	material := models.LessonMaterial{
		LessonID: lesson.ID,
		Title:    req.Title,
		FileURL:  req.FileURL,
		FileType: req.FileType,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to attach material"})
	}

	return c.Status(fiber.StatusCreated).JSON(material)
}

// ListLessonMaterials is visible to the owning teacher and to students
// who have a booking on the lesson.
func ListLessonMaterials(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	lessonID := c.Params("lessonId")

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var bookingCount int64
	database.DB.Model(&models.Booking{}).
		Where("lesson_id = ? AND student_id = ?", lesson.ID, caller.ID).
		Count(&bookingCount)

	if !policy.CanReadMaterials(caller, lesson, bookingCount > 0) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Materials are only visible to the teacher and booked students"})
	}

	var materials []models.LessonMaterial
	database.DB.
		Where("lesson_id = ?", lesson.ID).
		Order("created_at desc").
		Find(&materials)

	return c.JSON(materials)
}
