package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/service/audit"
)

type AuditHandler struct {
	svc audit.Service
}

func NewAuditHandler(svc audit.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GET /audit-logs
func (h *AuditHandler) List(c fiber.Ctx) error {
	var q struct {
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
		ActorID    string `query:"actor_id"`
		EntityType string `query:"entity_type"`
		EntityID   string `query:"entity_id"`
	}
	_ = c.Bind().Query(&q)

	req := audit.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.ActorID != "" {
		id, err := uuid.Parse(q.ActorID)
		if err != nil {
			return badRequest(c, "invalid actor_id")
		}
		req.ActorID = &id
	}
	if q.EntityType != "" {
		req.EntityType = &q.EntityType
	}
	if q.EntityID != "" {
		req.EntityID = &q.EntityID
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"entries":     result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}
