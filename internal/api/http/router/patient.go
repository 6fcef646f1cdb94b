package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/internal/api/http/handler"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	dh *handler.DocumentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), h.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), h.Create)
	patients.Get("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.Get)
	patients.Patch("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.Update)
	patients.Delete("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), h.Deactivate)

	patients.Get("/:id/documents", requirePerm(authorize.ResourcePatientDocument, authorize.ActionList), dh.List)
	patients.Post("/:id/documents", requirePerm(authorize.ResourcePatientDocument, authorize.ActionCreate), dh.Upload)

	documents := api.Group("/documents", authRequired)
	documents.Get("/:id/download", requirePerm(authorize.ResourcePatientDocument, authorize.ActionRead), dh.Download)
	documents.Delete("/:id", requirePerm(authorize.ResourcePatientDocument, authorize.ActionDelete), dh.Delete)
}
