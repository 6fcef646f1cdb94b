package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/internal/api/http/handler"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
)

func (r *Router) registerRatesRoutes(
	api fiber.Router,
	h *handler.RatesHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	rates := api.Group("/rates", authRequired)

	rates.Get("/", requirePerm(authorize.ResourceCommissionRates, authorize.ActionRead), h.Get)
	rates.Put("/", requirePerm(authorize.ResourceCommissionRates, authorize.ActionUpdate), h.Update)
}
