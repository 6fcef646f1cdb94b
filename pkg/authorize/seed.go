package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the clinic.
//
// Admin is not listed: it bypasses enforcement entirely (see Enforce).
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// RRHH runs settlements and manages staff records.
		{RoleRRHH, ResourcePayout, ActionManage, EffectAllow},
		{RoleRRHH, ResourcePayout, ActionExecute, EffectAllow},
		{RoleRRHH, ResourceCommissionRates, ActionRead, EffectAllow},
		{RoleRRHH, ResourceUser, ActionList, EffectAllow},
		{RoleRRHH, ResourceUser, ActionRead, EffectAllow},
		{RoleRRHH, ResourceBankAccount, ActionManage, EffectAllow},
		{RoleRRHH, ResourcePayment, ActionList, EffectAllow},
		{RoleRRHH, ResourcePayment, ActionRead, EffectAllow},
		{RoleRRHH, ResourceAudit, ActionList, EffectAllow},
		{RoleRRHH, ResourceAudit, ActionRead, EffectAllow},

		// Therapists see their own settlements; ownership is checked at the
		// service layer, this only opens the endpoints.
		{RoleTerapeuta, ResourcePayout, ActionRead, EffectAllow},
		{RoleTerapeuta, ResourcePayout, ActionList, EffectAllow},
		{RoleTerapeuta, ResourceBankAccount, ActionRead, EffectAllow},
		{RoleTerapeuta, ResourceBankAccount, ActionUpdate, EffectAllow},
		{RoleTerapeuta, ResourceAppointment, ActionList, EffectAllow},
		{RoleTerapeuta, ResourceAppointment, ActionRead, EffectAllow},

		// Reception handles patients, appointments and payment intake.
		{RoleRecepcion, ResourcePatient, ActionManage, EffectAllow},
		{RoleRecepcion, ResourcePatientDocument, ActionManage, EffectAllow},
		{RoleRecepcion, ResourceAppointment, ActionManage, EffectAllow},
		{RoleRecepcion, ResourcePayment, ActionList, EffectAllow},
		{RoleRecepcion, ResourcePayment, ActionRead, EffectAllow},
		{RoleRecepcion, ResourceUser, ActionList, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}

// AssignUserRole maps a users.role column value to its Casbin role and
// assigns it. Call this when creating a user or changing their role.
func AssignUserRole(ctx context.Context, auth IAuthorization, userID, dbRole string) error {
	role, ok := UserRoleToRBACRole[dbRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUser(ctx, GroupSubject(userID), role)
	return err
}

// RemoveUserRole removes a Casbin role from a user.
func RemoveUserRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	_, err := auth.RemoveRoleForUser(ctx, GroupSubject(userID), role)
	return err
}

// GetUserRoles returns all Casbin roles a user holds.
func GetUserRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	return auth.GetRolesForUser(ctx, GroupSubject(userID))
}
