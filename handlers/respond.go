package handlers

import (
	"github.com/anjiri1684/tutor_marketplace/apperrors"
	"github.com/gofiber/fiber/v2"
)

func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
}
