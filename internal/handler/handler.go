package handler

import (
	"errors"

	"go-storefront-ws/internal/service"
	"go-storefront-ws/internal/store"
	"go-storefront-ws/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// writeErr maps service errors to the uniform failure envelope. The
// message is the human-readable reason; callers key off success, not
// the HTTP status.
func writeErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidStatus):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrProductGone),
		errors.Is(err, store.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrPaymentNotVerified):
		status = fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalidSecret):
		status = fiber.StatusUnauthorized
	case errors.Is(err, store.ErrUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return response.JSONError(c, status, err.Error())
}
