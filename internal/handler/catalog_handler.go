package handler

import (
	"encoding/json"

	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/service"
	"go-storefront-ws/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context())
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, products)
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, product)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	created, err := h.service.CreateProduct(c.Context(), &product)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONCreated(c, created)
}

// UpdateProduct takes the raw body as a field map so an explicitly sent
// empty value overwrites, while omitted fields stay untouched.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var fields map[string]any
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	updated, err := h.service.UpdateProduct(c.Context(), c.Params("id"), fields)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, updated)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return writeErr(c, err)
	}
	return response.JSONMessage(c, "Product deleted")
}
