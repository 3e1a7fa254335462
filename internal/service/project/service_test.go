package project

import (
	"context"
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/fixtures"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/constructor-app/constructor-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (ProjectService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Load(fixtures.DemoData())
	return NewProjectService(memory.NewProjectRepository(store), memory.NewUserRepository(store)), store
}

func asUser(store *memory.Store, userID string) context.Context {
	repo := memory.NewUserRepository(store)
	u, err := repo.GetByID(context.Background(), userID)
	if err != nil {
		panic(err)
	}
	return actor.WithUser(context.Background(), u)
}

func projectIDs(projects []project.ProjectResponse) []string {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestListVisible(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("admin sees every project", func(t *testing.T) {
		projects, err := svc.ListVisible(asUser(store, "u5"))
		require.NoError(t, err)
		assert.Len(t, projects, 6)
	})

	t.Run("client sees only the project they own", func(t *testing.T) {
		projects, err := svc.ListVisible(asUser(store, "u7"))
		require.NoError(t, err)
		assert.Equal(t, []string{"p1"}, projectIDs(projects))
	})

	t.Run("member client sees projects by membership too", func(t *testing.T) {
		// u3 is a client with no ClientID match but is listed as a member
		projects, err := svc.ListVisible(asUser(store, "u3"))
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p3", "p5", "p6"}, projectIDs(projects))
	})

	t.Run("team member sees membership projects only", func(t *testing.T) {
		projects, err := svc.ListVisible(asUser(store, "u6"))
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p3"}, projectIDs(projects))
	})

	t.Run("missing acting user is rejected", func(t *testing.T) {
		_, err := svc.ListVisible(context.Background())
		assert.ErrorIs(t, err, user.ErrActingUserRequired)
	})
}

func TestGet(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("visible project is returned", func(t *testing.T) {
		p, err := svc.Get(asUser(store, "u6"), "p1")
		require.NoError(t, err)
		assert.Equal(t, "Lekki Luxury Apartments", p.Name)
	})

	t.Run("hidden project is denied even when it exists", func(t *testing.T) {
		_, err := svc.Get(asUser(store, "u6"), "p2")
		assert.ErrorIs(t, err, project.ErrProjectAccessDenied)
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		_, err := svc.Get(asUser(store, "u5"), "nope")
		assert.ErrorIs(t, err, project.ErrProjectNotFound)
	})
}

func TestTabs(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("privileged user gets the full catalogue", func(t *testing.T) {
		tabs, err := svc.Tabs(asUser(store, "u1"), "p1", "")
		require.NoError(t, err)
		assert.Equal(t, project.AllTabIDs(), tabs.VisibleID)
		assert.Equal(t, "overview", tabs.ActiveTab)
	})

	t.Run("client default hides budget transactions and tasks", func(t *testing.T) {
		tabs, err := svc.Tabs(asUser(store, "u7"), "p1", "")
		require.NoError(t, err)
		assert.NotContains(t, tabs.VisibleID, "budget")
		assert.NotContains(t, tabs.VisibleID, "transactions")
		assert.NotContains(t, tabs.VisibleID, "tasks")
		assert.Contains(t, tabs.VisibleID, "overview")
	})

	t.Run("hidden current tab falls back to the first visible", func(t *testing.T) {
		tabs, err := svc.Tabs(asUser(store, "u7"), "p1", "budget")
		require.NoError(t, err)
		assert.Equal(t, "overview", tabs.ActiveTab)
	})

	t.Run("visible current tab is kept", func(t *testing.T) {
		tabs, err := svc.Tabs(asUser(store, "u1"), "p1", "budget")
		require.NoError(t, err)
		assert.Equal(t, "budget", tabs.ActiveTab)
	})

	t.Run("tab metadata follows catalogue order", func(t *testing.T) {
		tabs, err := svc.Tabs(asUser(store, "u1"), "p1", "")
		require.NoError(t, err)
		require.Len(t, tabs.Tabs, len(project.AllProjectTabs))
		for i, tab := range tabs.Tabs {
			assert.Equal(t, project.AllProjectTabs[i].ID, tab.ID)
		}
	})
}

func TestAddMember(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	req := project.AddMemberRequest{
		Name:  "Sade Balogun",
		Email: "sade.balogun@constructor.com",
		Role:  string(user.RoleTeamMember),
	}

	t.Run("non privileged caller is rejected", func(t *testing.T) {
		_, err := svc.AddMember(asUser(store, "u6"), "p1", req)
		assert.ErrorIs(t, err, project.ErrManageTeamPrivileged)
	})

	t.Run("privileged caller adds a member with no tab override", func(t *testing.T) {
		created, err := svc.AddMember(asUser(store, "u1"), "p1", req)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Sade Balogun", created.Name)

		// the new member falls back to the role default
		tabs, err := svc.Tabs(actor.WithUser(context.Background(), user.User{
			ID: created.ID, Role: user.RoleTeamMember,
		}), "p1", "")
		require.NoError(t, err)
		assert.Equal(t, project.DefaultVisibleTabs(user.RoleTeamMember), tabs.VisibleID)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		_, err := svc.AddMember(asUser(store, "u1"), "p1", project.AddMemberRequest{
			Name: "X", Email: "x@constructor.com", Role: "Mastermind",
		})
		assert.Error(t, err)
	})
}

func TestRemoveMember(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("removing yourself is rejected", func(t *testing.T) {
		err := svc.RemoveMember(asUser(store, "u1"), "p1", "u1")
		assert.ErrorIs(t, err, project.ErrCannotRemoveSelf)
	})

	t.Run("non privileged caller is rejected", func(t *testing.T) {
		err := svc.RemoveMember(asUser(store, "u6"), "p1", "u2")
		assert.ErrorIs(t, err, project.ErrManageTeamPrivileged)
	})

	t.Run("privileged caller removes another member", func(t *testing.T) {
		require.NoError(t, svc.RemoveMember(asUser(store, "u1"), "p1", "u2"))

		p, err := svc.Get(asUser(store, "u1"), "p1")
		require.NoError(t, err)
		for _, m := range p.Members {
			assert.NotEqual(t, "u2", m.ID)
		}
	})

	t.Run("unknown member is not found", func(t *testing.T) {
		err := svc.RemoveMember(asUser(store, "u1"), "p1", "ghost")
		assert.ErrorIs(t, err, project.ErrMemberNotFound)
	})
}

func TestSetPermissions(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("non privileged caller is rejected", func(t *testing.T) {
		err := svc.SetPermissions(asUser(store, "u6"), "p1", "u6", project.SetPermissionsRequest{
			AllowedTabs: []string{"overview"},
		})
		assert.ErrorIs(t, err, project.ErrManageTeamPrivileged)
	})

	t.Run("unknown tab id is rejected", func(t *testing.T) {
		err := svc.SetPermissions(asUser(store, "u1"), "p1", "u6", project.SetPermissionsRequest{
			AllowedTabs: []string{"overview", "payroll"},
		})
		assert.Error(t, err)
	})

	t.Run("override replaces the role default verbatim", func(t *testing.T) {
		err := svc.SetPermissions(asUser(store, "u1"), "p1", "u6", project.SetPermissionsRequest{
			AllowedTabs: []string{"overview", "budget"},
		})
		require.NoError(t, err)

		tabs, err := svc.Tabs(asUser(store, "u6"), "p1", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"overview", "budget"}, tabs.VisibleID)
	})

	t.Run("explicit empty override hides every tab", func(t *testing.T) {
		err := svc.SetPermissions(asUser(store, "u1"), "p1", "u6", project.SetPermissionsRequest{
			AllowedTabs: []string{},
		})
		require.NoError(t, err)

		tabs, err := svc.Tabs(asUser(store, "u6"), "p1", "")
		require.NoError(t, err)
		assert.Empty(t, tabs.VisibleID)
		assert.Empty(t, tabs.ActiveTab)
	})

	t.Run("non member is rejected", func(t *testing.T) {
		err := svc.SetPermissions(asUser(store, "u1"), "p2", "u6", project.SetPermissionsRequest{
			AllowedTabs: []string{"overview"},
		})
		assert.ErrorIs(t, err, project.ErrMemberNotFound)
	})
}
