package handler

import (
	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/service"
	"go-storefront-ws/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings(c.Context())
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, settings)
}

// SaveSettings replaces the whole record, payment method list included.
func (h *SettingsHandler) SaveSettings(c *fiber.Ctx) error {
	var settings model.StoreSettings
	if err := c.BodyParser(&settings); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	saved, err := h.service.SaveSettings(c.Context(), &settings)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, saved)
}
