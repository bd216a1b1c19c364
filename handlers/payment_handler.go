package handlers

import (
	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/anjiri1684/tutor_marketplace/policy"
	"github.com/anjiri1684/tutor_marketplace/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RecordPaymentRequest carries a settlement outcome reported by the
// payment collaborator. Commission and payout are derived server-side
// and deliberately have no fields here.
type RecordPaymentRequest struct {
	BookingID     string  `json:"booking_id" validate:"required,uuid"`
	TotalAmount   float64 `json:"total_amount" validate:"min=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	PaymentStatus string  `json:"payment_status" validate:"required,oneof=pending completed failed refunded"`
	ExternalRef   *string `json:"external_ref,omitempty"`
}

func RecordPayment(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	if !policy.CanRecordPayment(caller) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Transactions can only be recorded by the platform"})
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	bookingID, _ := uuid.Parse(req.BookingID)

	txn, err := services.RecordPayment(database.DB, bookingID, services.RecordPaymentInput{
		TotalAmount: req.TotalAmount,
		Method:      req.PaymentMethod,
		ExternalRef: req.ExternalRef,
		Status:      req.PaymentStatus,
	})
	if err != nil {
		return fail(c, err)
	}

	if txn.PaymentStatus == models.PaymentStatusCompleted {
		go services.GenerateReceipt(txn.ID)
	}

	return c.Status(fiber.StatusCreated).JSON(txn)
}

func GetTransaction(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	bookingID := c.Params("bookingId")

	var txn models.Transaction
	if err := database.DB.Where("booking_id = ?", bookingID).First(&txn).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}

	if !policy.CanReadTransaction(caller, txn) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not a participant of this transaction"})
	}

	return c.JSON(txn)
}
