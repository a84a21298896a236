package handlers

import (
	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/gofiber/fiber/v2"
)

var paymentService *services.PaymentService

func InitPaymentHandler(payments *services.PaymentService) {
	paymentService = payments
}

// CreatePaymentIntentHandler requests a client secret from the payment
// gateway. Amount is in minor currency units.
func CreatePaymentIntentHandler(c *fiber.Ctx) error {
	var request struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request body"})
	}

	clientSecret, err := paymentService.CreateIntent(c.Context(), request.Amount, request.Currency)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// CheckoutHandler runs the two-step checkout transaction and reports both
// outcomes to the caller.
func CheckoutHandler(c *fiber.Ctx) error {
	var request services.CheckoutRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request body"})
	}

	result, err := paymentService.Checkout(c.Context(), request)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(result)
}
