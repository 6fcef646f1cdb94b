package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/internal/api/http/handler"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
)

func (r *Router) registerPaymentRoutes(
	api fiber.Router,
	h *handler.PaymentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	payments := api.Group("/payments", authRequired)

	payments.Get("/", requirePerm(authorize.ResourcePayment, authorize.ActionList), h.List)
	payments.Get("/:id", requirePerm(authorize.ResourcePayment, authorize.ActionRead), h.Get)
}
