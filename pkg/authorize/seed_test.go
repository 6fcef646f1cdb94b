package authorize

import (
	"context"
	"testing"
)

func TestSeedDefaultPolicies(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("SeedDefaultPolicies: %v", err)
	}

	if err := AssignUserRole(ctx, auth, "rrhh-user", UserRoleRRHH); err != nil {
		t.Fatalf("AssignUserRole: %v", err)
	}
	if err := AssignUserRole(ctx, auth, "recepcion-user", UserRoleRecepcion); err != nil {
		t.Fatalf("AssignUserRole: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		resource Resource
		action   Action
		want     bool
	}{
		{"rrhh can execute payouts", "rrhh-user", ResourcePayout, ActionExecute, true},
		{"rrhh can read rates", "rrhh-user", ResourceCommissionRates, ActionRead, true},
		{"rrhh cannot update rates", "rrhh-user", ResourceCommissionRates, ActionUpdate, false},
		{"recepcion manages patients", "recepcion-user", ResourcePatient, ActionCreate, true},
		{"recepcion cannot touch payouts", "recepcion-user", ResourcePayout, ActionList, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.resource, tt.action)
			if err != nil {
				t.Fatalf("Enforce: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignUserRoleUnknown(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)

	if err := AssignUserRole(context.Background(), auth, "u1", "contabilidad"); err != ErrInvalidArgs {
		t.Errorf("Expected ErrInvalidArgs, got %v", err)
	}
}
