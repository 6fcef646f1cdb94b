package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/service/payment"
)

type PaymentHandler struct {
	svc payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func mapPaymentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /payments
// Read-only: payments are recorded by the point-of-sale system upstream.
func (h *PaymentHandler) List(c fiber.Ctx) error {
	var q struct {
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		DateFrom  string `query:"date_from"`
		DateTo    string `query:"date_to"`
	}
	_ = c.Bind().Query(&q)

	req := payment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.DateFrom != "" {
		t, err := parseDate(q.DateFrom)
		if err != nil {
			return badRequest(c, "invalid date_from, expected YYYY-MM-DD")
		}
		req.DateFrom = &t
	}
	if q.DateTo != "" {
		t, err := parseDate(q.DateTo)
		if err != nil {
			return badRequest(c, "invalid date_to, expected YYYY-MM-DD")
		}
		req.DateTo = &t
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, fiber.Map{
		"payments":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /payments/:id
func (h *PaymentHandler) Get(c fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	p, err := h.svc.GetByID(c.Context(), paymentID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, p)
}
