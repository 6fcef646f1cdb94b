package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/internal/api/http/handler"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	users.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.CreateStaff)
	users.Get("/therapists", requirePerm(authorize.ResourceUser, authorize.ActionList), h.ListTherapists)
	users.Get("/:id", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.Get)

	// ":id" accepts the literal "me" so therapists can manage their own
	// account without the broader user permissions.
	users.Get("/:id/bank-account", requirePerm(authorize.ResourceBankAccount, authorize.ActionRead), h.GetBankAccount)
	users.Put("/:id/bank-account", requirePerm(authorize.ResourceBankAccount, authorize.ActionUpdate), h.SetBankAccount)
}
