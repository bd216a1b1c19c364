package handlers

import (
	"time"

	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/anjiri1684/tutor_marketplace/policy"
	"github.com/anjiri1684/tutor_marketplace/services"
	"github.com/anjiri1684/tutor_marketplace/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	LessonID    string  `json:"lesson_id" validate:"required,uuid"`
	ScheduledAt string  `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Notes       *string `json:"notes,omitempty"`
}

func CreateBooking(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	if !policy.CanCreateBooking(caller) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only students can book lessons"})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	lessonID, _ := uuid.Parse(req.LessonID)
	scheduledAt, _ := time.Parse(time.RFC3339, req.ScheduledAt)

	booking, err := services.CreateBooking(database.DB, lessonID, caller.ID, scheduledAt, req.Notes)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	bookingID := c.Params("bookingId")

	var req UpdateBookingStatusRequest
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
	if !policy.CanUpdateBooking(caller, booking) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not a participant of this booking"})
	}

	updated, err := services.TransitionBooking(database.DB, booking.ID, req.Status)
	if err != nil {
		return fail(c, err)
	}

	websocket.Publish(websocket.BookingEvent{
		BookingID: updated.ID,
		StudentID: updated.StudentID,
		TeacherID: updated.TeacherID,
		Status:    updated.Status,
	})

	return c.JSON(updated)
}

func GetMyBookings(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	var bookings []models.Booking
	database.DB.
		Preload("Teacher").
		Preload("Lesson.Subject").
		Where("student_id = ?", caller.ID).
		Order("scheduled_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetMyTeacherBookings(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	var bookings []models.Booking
	database.DB.
		Preload("Student").
		Preload("Lesson.Subject").
		Where("teacher_id = ?", caller.ID).
		Order("scheduled_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}
