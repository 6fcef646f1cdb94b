package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrBankAccountNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidIBAN):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /users
func (h *UserHandler) CreateStaff(c fiber.Ctx) error {
	var body struct {
		Name     string  `json:"name"`
		Email    string  `json:"email"`
		Phone    *string `json:"phone"`
		Role     string  `json:"role"`
		Password string  `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Email == "" || body.Role == "" || body.Password == "" {
		return badRequest(c, "name, email, role and password are required")
	}

	u, err := h.svc.CreateStaff(c.Context(), user.CreateStaffRequest{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Role:     body.Role,
		Password: body.Password,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return created(c, u)
}

// GET /users/therapists
func (h *UserHandler) ListTherapists(c fiber.Ctx) error {
	therapists, err := h.svc.ListTherapists(c.Context())
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, therapists)
}

// GET /users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// ---------------------------------------------------------------------------
// Bank account
// ---------------------------------------------------------------------------

// bankAccountTargetID resolves the :id path segment. The literal "me" maps to
// the authenticated user so therapists can manage their own account.
func bankAccountTargetID(c fiber.Ctx) (uuid.UUID, error) {
	if c.Params("id") == "me" {
		id, found := userIDFromClaims(c)
		if !found {
			return uuid.UUID{}, fiber.ErrUnauthorized
		}
		return id, nil
	}
	return uuid.Parse(c.Params("id"))
}

// PUT /users/:id/bank-account
func (h *UserHandler) SetBankAccount(c fiber.Ctx) error {
	targetID, err := bankAccountTargetID(c)
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		BankName      string `json:"bank_name"`
		AccountHolder string `json:"account_holder"`
		IBAN          string `json:"iban"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.IBAN == "" {
		return badRequest(c, "iban is required")
	}
	if body.AccountHolder == "" {
		return badRequest(c, "account_holder is required")
	}

	if err := h.svc.SetBankAccount(c.Context(), targetID, user.SetBankAccountRequest{
		BankName:      body.BankName,
		AccountHolder: body.AccountHolder,
		IBAN:          body.IBAN,
	}); err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"message": "bank account updated"})
}

// GET /users/:id/bank-account
func (h *UserHandler) GetBankAccount(c fiber.Ctx) error {
	targetID, err := bankAccountTargetID(c)
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	info, err := h.svc.GetBankAccount(c.Context(), targetID)
	if err != nil {
		return mapUserError(c, err)
	}

	// Full IBAN stays server-side; clients only ever see the mask.
	return ok(c, fiber.Map{
		"bank_name":      info.BankName,
		"account_holder": info.AccountHolder,
		"iban_masked":    info.IBANMasked,
	})
}
