package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/commission"
	"github.com/fundacionaurora/clinica_backend/internal/service/payout"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
	pasetotoken "github.com/fundacionaurora/clinica_backend/pkg/paseto"
)

const dateLayout = "2006-01-02"

type PayoutHandler struct {
	svc  payout.Service
	auth authorize.IAuthorization
}

func NewPayoutHandler(svc payout.Service, auth authorize.IAuthorization) *PayoutHandler {
	return &PayoutHandler{svc: svc, auth: auth}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func userIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, found := pasetotoken.ClaimsFromFiber(c)
	if !found {
		return uuid.UUID{}, false
	}
	return claims.UserID, true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// therapistScope reports whether the caller holds only the therapist role,
// in which case every payout query is restricted to their own records.
func (h *PayoutHandler) therapistScope(c fiber.Ctx, userID uuid.UUID) (bool, error) {
	roles, err := h.auth.GetRolesForUser(c.Context(), authorize.GroupSubject(userID.String()))
	if err != nil {
		return false, err
	}
	isTherapist := false
	for _, r := range roles {
		if r != authorize.RoleTerapeuta {
			return false, nil
		}
		isTherapist = true
	}
	return isTherapist, nil
}

func mapPayoutError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payout.ErrPayoutNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, payout.ErrEmptyPeriod):
		return unprocessable(c, err.Error())
	case errors.Is(err, payout.ErrAlreadyPaid):
		return conflict(c, err.Error())
	case errors.Is(err, payout.ErrInvalidPeriod):
		return badRequest(c, err.Error())
	case errors.Is(err, payout.ErrNotOwner):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

func parsePeriod(therapistID, periodStart, periodEnd, payoutType string) (payout.PeriodRequest, string) {
	tid, err := uuid.Parse(therapistID)
	if err != nil {
		return payout.PeriodRequest{}, "invalid therapist_id"
	}
	start, err := parseDate(periodStart)
	if err != nil {
		return payout.PeriodRequest{}, "invalid period_start, expected YYYY-MM-DD"
	}
	end, err := parseDate(periodEnd)
	if err != nil {
		return payout.PeriodRequest{}, "invalid period_end, expected YYYY-MM-DD"
	}

	pt := commission.PayoutType(payoutType)
	if pt == "" {
		pt = commission.PayoutMensual
	}
	if pt != commission.PayoutMensual && pt != commission.PayoutPorPago {
		return payout.PeriodRequest{}, "invalid payout_type, expected mensual or por_pago"
	}

	return payout.PeriodRequest{
		TherapistID: tid,
		PeriodStart: start,
		PeriodEnd:   end,
		PayoutType:  pt,
	}, ""
}

// ---------------------------------------------------------------------------
// Settlement
// ---------------------------------------------------------------------------

// POST /payouts/preview
// Computes the settlement without persisting anything.
func (h *PayoutHandler) Preview(c fiber.Ctx) error {
	var body struct {
		TherapistID string `json:"therapist_id"`
		PeriodStart string `json:"period_start"`
		PeriodEnd   string `json:"period_end"`
		PayoutType  string `json:"payout_type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, msg := parsePeriod(body.TherapistID, body.PeriodStart, body.PeriodEnd, body.PayoutType)
	if msg != "" {
		return badRequest(c, msg)
	}

	pv, err := h.svc.Preview(c.Context(), req)
	if err != nil {
		return mapPayoutError(c, err)
	}

	return ok(c, pv)
}

// POST /payouts
func (h *PayoutHandler) Create(c fiber.Ctx) error {
	actorID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		TherapistID string  `json:"therapist_id"`
		PeriodStart string  `json:"period_start"`
		PeriodEnd   string  `json:"period_end"`
		PayoutType  string  `json:"payout_type"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, msg := parsePeriod(body.TherapistID, body.PeriodStart, body.PeriodEnd, body.PayoutType)
	if msg != "" {
		return badRequest(c, msg)
	}

	p, err := h.svc.Create(c.Context(), actorID, payout.CreateRequest{
		PeriodRequest: req,
		Notes:         body.Notes,
	})
	if err != nil {
		return mapPayoutError(c, err)
	}

	return created(c, p)
}

// POST /payouts/:id/pay
func (h *PayoutHandler) MarkPaid(c fiber.Ctx) error {
	actorID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	payoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payout id")
	}

	var body struct {
		BankTransferRef *string `json:"bank_transfer_ref"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.MarkPaid(c.Context(), actorID, payoutID, payout.MarkPaidRequest{
		BankTransferRef: body.BankTransferRef,
	})
	if err != nil {
		return mapPayoutError(c, err)
	}

	return ok(c, p)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GET /payouts
func (h *PayoutHandler) List(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	var q struct {
		Page        int    `query:"page"`
		TherapistID string `query:"therapist_id"`
		Status      string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	req := payout.ListRequest{Page: q.Page}
	if q.TherapistID != "" {
		id, err := uuid.Parse(q.TherapistID)
		if err != nil {
			return badRequest(c, "invalid therapist_id")
		}
		req.TherapistID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	ownOnly, err := h.therapistScope(c, userID)
	if err != nil {
		return internalError(c)
	}
	if ownOnly {
		req.TherapistID = &userID
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPayoutError(c, err)
	}

	return ok(c, fiber.Map{
		"payouts":     result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /payouts/summary
func (h *PayoutHandler) Summary(c fiber.Ctx) error {
	s, err := h.svc.Summary(c.Context())
	if err != nil {
		return mapPayoutError(c, err)
	}
	return ok(c, s)
}

// GET /payouts/:id
func (h *PayoutHandler) Get(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	payoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payout id")
	}

	d, err := h.svc.GetByID(c.Context(), payoutID)
	if err != nil {
		return mapPayoutError(c, err)
	}

	ownOnly, err := h.therapistScope(c, userID)
	if err != nil {
		return internalError(c)
	}
	if ownOnly && d.Payout.TherapistID != userID {
		return mapPayoutError(c, payout.ErrNotOwner)
	}

	return ok(c, d)
}
