package handler

import (
	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/service"
	"go-storefront-ws/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	var req service.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	trx, err := h.service.Checkout(c.Context(), &req)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONCreated(c, trx)
}

func (h *PaymentHandler) GetTransaction(c *fiber.Ctx) error {
	trx, err := h.service.GetTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, trx)
}

func (h *PaymentHandler) GetTransactions(c *fiber.Ctx) error {
	trxs, err := h.service.ListTransactions(c.Context())
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, trxs)
}

func (h *PaymentHandler) UploadProof(c *fiber.Ctx) error {
	var req struct {
		ProofImage string `json:"proofImage"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	trx, err := h.service.UploadProof(c.Context(), c.Params("id"), req.ProofImage)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, trx)
}

func (h *PaymentHandler) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Status model.TransactionStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	trx, err := h.service.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, trx)
}

func (h *PaymentHandler) UpdateResi(c *fiber.Ctx) error {
	var req struct {
		Resi string `json:"resi"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.JSONError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	trx, err := h.service.UpdateResi(c.Context(), c.Params("id"), req.Resi)
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, trx)
}

// VerifyDownload is the buyer's success-link entry point. The token is
// the only lookup key here; repeat calls are harmless.
func (h *PaymentHandler) VerifyDownload(c *fiber.Ctx) error {
	grant, err := h.service.VerifyDownloadToken(c.Context(), c.Params("token"))
	if err != nil {
		return writeErr(c, err)
	}
	return response.JSONSuccess(c, grant)
}
