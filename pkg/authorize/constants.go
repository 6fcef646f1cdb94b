package authorize

type Action string
type Resource string
type Role string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // mark paid, run a settlement, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity
	ResourceUser        Resource = "user"
	ResourceBankAccount Resource = "bank_account"

	// Clinical records
	ResourcePatient         Resource = "patient"
	ResourcePatientDocument Resource = "patient_document"
	ResourceAppointment     Resource = "appointment"

	// Financial
	ResourcePayment         Resource = "payment"
	ResourcePayout          Resource = "payout"
	ResourceCommissionRates Resource = "commission_rates"

	// System
	ResourceAudit Resource = "audit_log"
	ResourceRBAC  Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceBankAccount: {},
	ResourcePatient: {}, ResourcePatientDocument: {}, ResourceAppointment: {},
	ResourcePayment: {}, ResourcePayout: {}, ResourceCommissionRates: {},
	ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	RoleAdmin     Role = "role:admin"
	RoleRRHH      Role = "role:rrhh"
	RoleTerapeuta Role = "role:terapeuta"
	RoleRecepcion Role = "role:recepcion"
)

var KnownRoles = map[Role]struct{}{
	RoleAdmin:     {},
	RoleRRHH:      {},
	RoleTerapeuta: {},
	RoleRecepcion: {},
}

// Spanish display names
var RoleDisplayNamesES = map[Role]string{
	RoleAdmin:     "Administración",
	RoleRRHH:      "Recursos Humanos",
	RoleTerapeuta: "Terapeuta",
	RoleRecepcion: "Recepción",
}

// User role strings (stored in DB users.role column)
const (
	UserRoleAdmin     = "admin"
	UserRoleRRHH      = "rrhh"
	UserRoleTerapeuta = "terapeuta"
	UserRoleRecepcion = "recepcion"
)

// UserRoleToRBACRole maps DB role values to Casbin roles
var UserRoleToRBACRole = map[string]Role{
	UserRoleAdmin:     RoleAdmin,
	UserRoleRRHH:      RoleRRHH,
	UserRoleTerapeuta: RoleTerapeuta,
	UserRoleRecepcion: RoleRecepcion,
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id).
type GroupSubject string

// Grouping rows: g, user_id, role
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
}

// Permission rows: p, role, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
