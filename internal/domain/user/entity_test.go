package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsPrivileged(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleAdmin.IsPrivileged())
	assert.True(t, RoleCompanyOwner.IsPrivileged())
	assert.True(t, RoleProjectManager.IsPrivileged())
	assert.False(t, RoleTeamMember.IsPrivileged())
	assert.False(t, RoleClient.IsPrivileged())
}

func TestRole_IsClient(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleClient.IsClient())
	for _, r := range []Role{RoleAdmin, RoleCompanyOwner, RoleProjectManager, RoleTeamMember} {
		assert.False(t, r.IsClient(), "role %s should not be a client", r)
	}
}

func TestRole_IsTeamMember(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleTeamMember.IsTeamMember())
	for _, r := range []Role{RoleAdmin, RoleCompanyOwner, RoleProjectManager, RoleClient} {
		assert.False(t, r.IsTeamMember(), "role %s should not be a team member", r)
	}
}

func TestUser_PredicatesDelegateToRole(t *testing.T) {
	t.Parallel()

	admin := User{ID: "u1", Role: RoleAdmin}
	member := User{ID: "u2", Role: RoleTeamMember}
	client := User{ID: "u3", Role: RoleClient}

	assert.True(t, admin.IsPrivileged())
	assert.False(t, admin.IsClient())
	assert.True(t, member.IsTeamMember())
	assert.False(t, member.IsPrivileged())
	assert.True(t, client.IsClient())
	assert.False(t, client.IsPrivileged())
}
