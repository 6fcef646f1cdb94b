package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPatientType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page        int    `query:"page"`
		PerPage     int    `query:"per_page"`
		Type        string `query:"type"`
		TherapistID string `query:"therapist_id"`
		Active      *bool  `query:"active"`
		Search      string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Active:  q.Active,
		Search:  q.Search,
	}
	if q.Type != "" {
		req.Type = &q.Type
	}
	if q.TherapistID != "" {
		id, err := uuid.Parse(q.TherapistID)
		if err != nil {
			return badRequest(c, "invalid therapist_id")
		}
		req.TherapistID = &id
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName          string  `json:"first_name"`
		LastName           string  `json:"last_name"`
		Type               *string `json:"type"`
		PrimaryTherapistID *string `json:"primary_therapist_id"`
		Email              *string `json:"email"`
		Phone              *string `json:"phone"`
		Notes              *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" {
		return badRequest(c, "first_name and last_name are required")
	}

	req := patient.CreateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Type:      body.Type,
		Email:     body.Email,
		Phone:     body.Phone,
		Notes:     body.Notes,
	}
	if body.PrimaryTherapistID != nil {
		id, err := uuid.Parse(*body.PrimaryTherapistID)
		if err != nil {
			return badRequest(c, "invalid primary_therapist_id")
		}
		req.PrimaryTherapistID = &id
	}

	p, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName          *string `json:"first_name"`
		LastName           *string `json:"last_name"`
		Type               *string `json:"type"`
		PrimaryTherapistID *string `json:"primary_therapist_id"`
		Email              *string `json:"email"`
		Phone              *string `json:"phone"`
		Notes              *string `json:"notes"`
		Active             *bool   `json:"active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Type:      body.Type,
		Email:     body.Email,
		Phone:     body.Phone,
		Notes:     body.Notes,
		Active:    body.Active,
	}
	if body.PrimaryTherapistID != nil {
		id, err := uuid.Parse(*body.PrimaryTherapistID)
		if err != nil {
			return badRequest(c, "invalid primary_therapist_id")
		}
		req.PrimaryTherapistID = &id
	}

	p, err := h.svc.Update(c.Context(), patientID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// DELETE /patients/:id
// Soft delete: the row is kept for settled payout history.
func (h *PatientHandler) Deactivate(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Deactivate(c.Context(), patientID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}
