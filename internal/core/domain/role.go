package domain

// Role is a named capability bucket. Authorization checks test membership only.
type Role string

const (
	RoleSuperAdmin       Role = "super-admin"
	RoleCounsellor       Role = "counsellor"
	RoleBranchOffice     Role = "branch-office"
	RoleProcessingOffice Role = "processing-office"
	RoleFrontOffice      Role = "front-office"
	RoleAssociate        Role = "associate"
)

// DashboardRoute pairs a role with the route namespace that owns its dashboard.
type DashboardRoute struct {
	Role      Role
	Namespace string
}

// DashboardPrecedence is evaluated top-down; the first role the principal holds wins.
var DashboardPrecedence = []DashboardRoute{
	{Role: RoleSuperAdmin, Namespace: "super-admin"},
	{Role: RoleCounsellor, Namespace: "counsellor"},
	{Role: RoleBranchOffice, Namespace: "branch-office"},
	{Role: RoleProcessingOffice, Namespace: "processing-office"},
	{Role: RoleFrontOffice, Namespace: "front-office"},
	{Role: RoleAssociate, Namespace: "associate"},
}

// ResolveDashboard returns the authoritative dashboard route for the given roles.
func ResolveDashboard(roles []Role) (DashboardRoute, bool) {
	held := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		held[r] = struct{}{}
	}
	for _, route := range DashboardPrecedence {
		if _, ok := held[route.Role]; ok {
			return route, true
		}
	}
	return DashboardRoute{}, false
}

// IsKnownRole reports whether r appears in the precedence list.
func IsKnownRole(r Role) bool {
	for _, route := range DashboardPrecedence {
		if route.Role == r {
			return true
		}
	}
	return false
}
