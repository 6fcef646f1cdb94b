package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/internal/api/http/handler"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
)

func (r *Router) registerAuditRoutes(
	api fiber.Router,
	h *handler.AuditHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	api.Get("/audit-logs", authRequired, requirePerm(authorize.ResourceAudit, authorize.ActionList), h.List)
}
