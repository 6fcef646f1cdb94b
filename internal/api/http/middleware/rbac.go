package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
)

// RequirePermission checks that the authenticated user may perform the given
// action on the resource. Record-level ownership (a therapist reading only
// their own payouts) is enforced in the handlers.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		subject, err := authorize.SubjectFromContext(c.Context())
		if err != nil {
			return fiber.ErrUnauthorized
		}

		if err := auth.MustEnforce(c.Context(), subject, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
