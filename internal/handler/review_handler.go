package handler

import (
	"go-storefront-ws/internal/service"
	"go-storefront-ws/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

func (h *ReviewHandler) GetProductReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListProductReviews(c.Context(), c.Params("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, reviews)
}

func (h *ReviewHandler) AddReview(c *fiber.Ctx) error {
	var req service.AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	review, err := h.service.AddReview(c.Context(), &req)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONCreated(c, review)
}
