package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/internal/service/rates"
)

type RatesHandler struct {
	svc rates.Service
}

func NewRatesHandler(svc rates.Service) *RatesHandler {
	return &RatesHandler{svc: svc}
}

func mapRatesError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, rates.ErrInvalidRate):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /rates
func (h *RatesHandler) Get(c fiber.Ctx) error {
	r, err := h.svc.Get(c.Context())
	if err != nil {
		return mapRatesError(c, err)
	}
	return ok(c, r)
}

// PUT /rates
// All fields optional; omitted rates keep their current value.
func (h *RatesHandler) Update(c fiber.Ctx) error {
	actorID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		InternalRate        *int `json:"commission_internal_rate"`
		ExternalRate        *int `json:"commission_external_rate"`
		DeductionMonthly    *int `json:"payout_deduction_monthly"`
		DeductionPerPayment *int `json:"payout_deduction_per_payment"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Update(c.Context(), actorID, rates.UpdateRequest{
		InternalRate:        body.InternalRate,
		ExternalRate:        body.ExternalRate,
		DeductionMonthly:    body.DeductionMonthly,
		DeductionPerPayment: body.DeductionPerPayment,
	})
	if err != nil {
		return mapRatesError(c, err)
	}

	return ok(c, r)
}
