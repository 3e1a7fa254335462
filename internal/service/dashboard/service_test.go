package dashboard

import (
	"context"
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/fixtures"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/constructor-app/constructor-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (DashboardService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Load(fixtures.DemoData())
	svc := NewDashboardService(
		memory.NewProjectRepository(store),
		memory.NewTaskRepository(store),
		memory.NewMaterialRepository(store),
	)
	return svc, store
}

func asUser(store *memory.Store, userID string) context.Context {
	repo := memory.NewUserRepository(store)
	u, err := repo.GetByID(context.Background(), userID)
	if err != nil {
		panic(err)
	}
	return actor.WithUser(context.Background(), u)
}

func TestSummary(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("admin counts cover the whole workspace", func(t *testing.T) {
		summary, err := svc.Summary(asUser(store, "u5"))
		require.NoError(t, err)

		assert.Equal(t, 6, summary.Projects.Total)
		// p4 is completed
		assert.Equal(t, 5, summary.Projects.Active)
		// 9 tasks, 2 done
		assert.Equal(t, 7, summary.Tasks.Due)
		assert.Equal(t, 4, summary.Inventory.InStock)
		assert.Equal(t, 1, summary.Inventory.LowStock)
		assert.Equal(t, 1, summary.Inventory.OutOfStock)
	})

	t.Run("team member counts follow their visibility", func(t *testing.T) {
		summary, err := svc.Summary(asUser(store, "u6"))
		require.NoError(t, err)

		// membership in p1 and p3 only
		assert.Equal(t, 2, summary.Projects.Total)
		assert.Equal(t, 2, summary.Projects.Active)
		// t8 and t9 are assigned to u6 and not done
		assert.Equal(t, 2, summary.Tasks.Due)
		// tagged materials only: m1, m3, m6
		assert.Equal(t, 3, summary.Inventory.InStock)
		assert.Equal(t, 0, summary.Inventory.LowStock)
		assert.Equal(t, 0, summary.Inventory.OutOfStock)
	})

	t.Run("client owning a project sees its counts only", func(t *testing.T) {
		summary, err := svc.Summary(asUser(store, "u7"))
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Projects.Total)
		assert.Equal(t, 0, summary.Tasks.Due)
		// untagged materials stay hidden from clients
		assert.Equal(t, 0, summary.Inventory.InStock+summary.Inventory.LowStock+summary.Inventory.OutOfStock)
	})
}
