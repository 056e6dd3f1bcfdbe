package access

import (
	"testing"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
)

func TestResolveRoleDefaultsToTenant(t *testing.T) {
	assert.Equal(t, RoleTenant, ResolveRole(nil, "someone@example.com", nil))
	assert.Equal(t, RoleTenant, ResolveRole(&profiles.Profile{Role: ""}, "someone@example.com", nil))
	assert.Equal(t, RoleTenant, ResolveRole(&profiles.Profile{Role: "gibberish"}, "someone@example.com", nil))
}

func TestResolveRoleUsesStoredRole(t *testing.T) {
	p := &profiles.Profile{Role: RoleOrganizer}
	assert.Equal(t, RoleOrganizer, ResolveRole(p, "org@example.com", nil))
}

func TestResolveRoleOperatorOverrideWins(t *testing.T) {
	operators := map[string]string{"boss@permitakaun.my": RoleSuperadmin}

	// override beats the stored role
	p := &profiles.Profile{Role: RoleTenant}
	assert.Equal(t, RoleSuperadmin, ResolveRole(p, "boss@permitakaun.my", operators))

	// override applies even without a profile row
	assert.Equal(t, RoleSuperadmin, ResolveRole(nil, "boss@permitakaun.my", operators))

	// email matching is case-insensitive
	assert.Equal(t, RoleSuperadmin, ResolveRole(nil, "Boss@PermitAkaun.MY", operators))
}

func TestResolveRoleInvalidOverrideIgnored(t *testing.T) {
	operators := map[string]string{"boss@permitakaun.my": "emperor"}
	p := &profiles.Profile{Role: RoleStaff}
	assert.Equal(t, RoleStaff, ResolveRole(p, "boss@permitakaun.my", operators))
}

func TestResolveRoleIdempotent(t *testing.T) {
	operators := map[string]string{"boss@permitakaun.my": RoleAdmin}
	p := &profiles.Profile{Role: RoleOrganizer}

	first := ResolveRole(p, "org@example.com", operators)
	second := ResolveRole(p, "org@example.com", operators)
	assert.Equal(t, first, second)
}
