package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/internal/api/http/handler"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
)

func (r *Router) registerPayoutRoutes(
	api fiber.Router,
	h *handler.PayoutHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	payouts := api.Group("/payouts", authRequired)

	// Therapists may list and read (restricted to their own records in the
	// handler); settlement and payment are back-office operations.
	payouts.Get("/", requirePerm(authorize.ResourcePayout, authorize.ActionList), h.List)
	payouts.Get("/summary", requirePerm(authorize.ResourcePayout, authorize.ActionList), h.Summary)
	payouts.Get("/:id", requirePerm(authorize.ResourcePayout, authorize.ActionRead), h.Get)

	payouts.Post("/preview", requirePerm(authorize.ResourcePayout, authorize.ActionCreate), h.Preview)
	payouts.Post("/", requirePerm(authorize.ResourcePayout, authorize.ActionCreate), h.Create)
	payouts.Post("/:id/pay", requirePerm(authorize.ResourcePayout, authorize.ActionExecute), h.MarkPaid)
}
