package project

import (
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

var (
	manager = user.User{ID: "u1", Role: user.RoleProjectManager}
	member  = user.User{ID: "u6", Role: user.RoleTeamMember}
	client  = user.User{ID: "u7", Role: user.RoleClient}
)

func testProjects() []Project {
	return []Project{
		{ID: "p1", Members: []user.User{manager, member}, ClientID: "u7"},
		{ID: "p2", Members: []user.User{manager}},
		{ID: "p3", Members: []user.User{member}},
	}
}

func TestFilterVisible_PrivilegedSeesAll(t *testing.T) {
	t.Parallel()

	projects := testProjects()

	for _, role := range []user.Role{user.RoleAdmin, user.RoleCompanyOwner, user.RoleProjectManager} {
		u := user.User{ID: "ux", Role: role}
		got := FilterVisible(projects, u)
		assert.Equal(t, projects, got, "role %s", role)
	}
}

func TestFilterVisible_ClientSeesOnlyOwnProjects(t *testing.T) {
	t.Parallel()

	got := FilterVisible(testProjects(), client)

	assert.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestFilterVisible_TeamMemberSeesMemberProjects(t *testing.T) {
	t.Parallel()

	got := FilterVisible(testProjects(), member)

	assert.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)
}

func TestFilterVisible_EmptyResultIsValid(t *testing.T) {
	t.Parallel()

	stranger := user.User{ID: "u99", Role: user.RoleTeamMember}

	got := FilterVisible(testProjects(), stranger)

	assert.Empty(t, got)
}

func TestProject_HasMember(t *testing.T) {
	t.Parallel()

	p := testProjects()[0]

	assert.True(t, p.HasMember("u6"))
	assert.False(t, p.HasMember("u7")) // client is not a member
}
