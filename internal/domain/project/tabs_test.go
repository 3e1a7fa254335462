package project

import (
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestDefaultVisibleTabs_Client(t *testing.T) {
	t.Parallel()

	got := DefaultVisibleTabs(user.RoleClient)

	assert.NotContains(t, got, TabBudget)
	assert.NotContains(t, got, TabTransactions)
	assert.NotContains(t, got, TabTasks)
	assert.Len(t, got, len(AllProjectTabs)-3)
	// order of the remaining tabs follows the catalogue
	assert.Equal(t, TabOverview, got[0])
	assert.Equal(t, TabProgressReports, got[1])
}

func TestDefaultVisibleTabs_TeamMember(t *testing.T) {
	t.Parallel()

	got := DefaultVisibleTabs(user.RoleTeamMember)

	assert.NotContains(t, got, TabBudget)
	assert.Contains(t, got, TabTransactions)
	assert.Contains(t, got, TabTasks)
	assert.Len(t, got, len(AllProjectTabs)-1)
}

func TestDefaultVisibleTabs_PrivilegedRolesSeeEverything(t *testing.T) {
	t.Parallel()

	for _, role := range []user.Role{user.RoleAdmin, user.RoleCompanyOwner, user.RoleProjectManager} {
		assert.Equal(t, AllTabIDs(), DefaultVisibleTabs(role), "role %s", role)
	}
}

func TestEffectiveVisibleTabs_FallsBackToRoleDefault(t *testing.T) {
	t.Parallel()

	p := Project{ID: "p1"}

	got := p.EffectiveVisibleTabs("u6", user.RoleTeamMember)

	assert.Equal(t, DefaultVisibleTabs(user.RoleTeamMember), got)
}

func TestEffectiveVisibleTabs_OverrideWinsVerbatim(t *testing.T) {
	t.Parallel()

	p := Project{
		ID: "p1",
		MemberPermissions: map[string][]string{
			"u6": {TabOverview, TabTasks},
		},
	}

	got := p.EffectiveVisibleTabs("u6", user.RoleTeamMember)

	assert.Equal(t, []string{TabOverview, TabTasks}, got)
}

func TestEffectiveVisibleTabs_ExplicitEmptySurvives(t *testing.T) {
	t.Parallel()

	// an explicit empty override hides everything and must not be
	// treated as "unset"
	p := Project{
		ID: "p1",
		MemberPermissions: map[string][]string{
			"u6": {},
		},
	}

	got := p.EffectiveVisibleTabs("u6", user.RoleTeamMember)

	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestEffectiveVisibleTabs_ReturnsCopy(t *testing.T) {
	t.Parallel()

	p := Project{
		ID: "p1",
		MemberPermissions: map[string][]string{
			"u6": {TabOverview, TabTasks},
		},
	}

	got := p.EffectiveVisibleTabs("u6", user.RoleTeamMember)
	got[0] = "mutated"

	assert.Equal(t, []string{TabOverview, TabTasks}, p.MemberPermissions["u6"])
}

func TestResolveActiveTab(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		visible []string
		current string
		want    string
	}{
		{"current still visible", []string{TabOverview, TabTasks}, TabTasks, TabTasks},
		{"falls back to overview", []string{TabOverview, TabTasks}, TabBudget, TabOverview},
		{"falls back to first without overview", []string{TabTasks, TabTeam}, TabBudget, TabTasks},
		{"empty set yields empty state", []string{}, TabOverview, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ResolveActiveTab(c.visible, c.current))
		})
	}
}

func TestIsKnownTab(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKnownTab(TabNotepad))
	assert.False(t, IsKnownTab("payroll"))
}
