package handler

import (
	"go-storefront-ws/internal/service"
	"go-storefront-ws/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Secret string `json:"secret"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	token, err := h.service.Login(req.Secret)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, fiber.Map{"token": token})
}
