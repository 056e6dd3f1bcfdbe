package access

import (
	"strings"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/profiles"
)

const (
	RoleTenant     = "tenant"
	RoleOrganizer  = "organizer"
	RoleStaff      = "staff"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleTenant, RoleOrganizer, RoleStaff, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsStaffRole covers the roles that bypass subscription gating entirely.
func IsStaffRole(role string) bool {
	switch role {
	case RoleStaff, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// ResolveRole maps a stored profile (possibly nil) plus the session email to a
// role. The operator allow-list wins over the stored role: it is the recovery
// path for known operator accounts whose profile row is missing or wrong.
// Always returns a valid role, defaulting to tenant.
func ResolveRole(p *profiles.Profile, email string, operators map[string]string) string {
	if r, ok := operators[strings.ToLower(strings.TrimSpace(email))]; ok && IsValidRole(r) {
		return r
	}
	if p != nil && IsValidRole(p.Role) {
		return p.Role
	}
	return RoleTenant
}
