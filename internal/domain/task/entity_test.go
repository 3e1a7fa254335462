package task

import (
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestFilterVisible(t *testing.T) {
	t.Parallel()

	assignee := user.User{ID: "u6", Name: "Efe Abiola", Role: user.RoleTeamMember}
	tasks := []Task{
		{ID: "t1", Title: "Design blueprints", Assignee: &user.User{ID: "u1"}},
		{ID: "t2", Title: "Hire subcontractor"}, // unassigned
		{ID: "t3", Title: "Site safety audit", Assignee: &assignee},
	}

	pm := user.User{ID: "u1", Role: user.RoleProjectManager}
	assert.Equal(t, tasks, FilterVisible(tasks, pm))

	got := FilterVisible(tasks, assignee)
	assert.Len(t, got, 1)
	assert.Equal(t, "t3", got[0].ID)

	// unassigned tasks never show for non-privileged roles
	client := user.User{ID: "u7", Role: user.RoleClient}
	assert.Empty(t, FilterVisible(tasks, client))
}
