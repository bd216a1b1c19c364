package handlers

import (
	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/anjiri1684/tutor_marketplace/policy"
	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	FullName   *string  `json:"full_name"`
	Bio        *string  `json:"bio"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,min=0"`
}

func GetMyProfile(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	var profile models.Profile
	if err := database.DB.Where("id = ?", caller.ID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	return c.JSON(profile)
}

func GetPublicProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var profile models.Profile
	if err := database.DB.Where("id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	return c.JSON(profile)
}

func UpdateMyProfile(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	var profile models.Profile
	if err := database.DB.Where("id = ?", caller.ID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	if !policy.CanUpdateProfile(caller, profile) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You cannot update this profile"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = req.HourlyRate
	}

	database.DB.Save(&profile)

	return c.JSON(profile)
}

type AdminUpdateProfileRequest struct {
	FullName   *string `json:"full_name"`
	Role       *string `json:"role" validate:"omitempty,oneof=student teacher admin"`
	IsVerified *bool   `json:"is_verified"`
}

func AdminUpdateProfile(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	userID := c.Params("userId")

	var profile models.Profile
	if err := database.DB.Where("id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	if !policy.CanUpdateProfile(caller, profile) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You cannot update this profile"})
	}

	var req AdminUpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Role != nil {
		profile.Role = *req.Role
	}
	if req.IsVerified != nil {
		profile.IsVerified = *req.IsVerified
	}

	database.DB.Save(&profile)

	return c.JSON(profile)
}
