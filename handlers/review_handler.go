package handlers

import (
	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/anjiri1684/tutor_marketplace/policy"
	"github.com/anjiri1684/tutor_marketplace/services"
	"github.com/gofiber/fiber/v2"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func SubmitReview(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	bookingID := c.Params("bookingId")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if !policy.CanSubmitReview(caller, booking) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the student for this booking"})
	}

	review, err := services.SubmitReview(database.DB, booking.ID, caller.ID, req.Rating, req.Comment)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func ListTeacherReviews(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")

	var reviews []models.Review
	database.DB.
		Preload("Student").
		Where("teacher_id = ?", teacherID).
		Order("created_at desc").
		Find(&reviews)

	return c.JSON(reviews)
}
