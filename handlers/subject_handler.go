package handlers

import (
	"errors"

	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/anjiri1684/tutor_marketplace/policy"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubjectRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func ListSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	database.DB.Order("name asc").Find(&subjects)

	return c.JSON(subjects)
}

func CreateSubject(c *fiber.Ctx) error {
	if !policy.CanWriteSubject(middleware.Caller(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only admins can manage subjects"})
	}

	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.Subject
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A subject with this name already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	subject := models.Subject{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := database.DB.Create(&subject).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create subject"})
	}

	return c.Status(fiber.StatusCreated).JSON(subject)
}

func UpdateSubject(c *fiber.Ctx) error {
	if !policy.CanWriteSubject(middleware.Caller(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only admins can manage subjects"})
	}

	subjectID := c.Params("subjectId")

	var subject models.Subject
	if err := database.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subject.Name = req.Name
	subject.Description = req.Description
	subject.Icon = req.Icon
	database.DB.Save(&subject)

	return c.JSON(subject)
}
