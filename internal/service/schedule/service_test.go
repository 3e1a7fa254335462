package schedule

import (
	"context"
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/domain/schedule"
	"github.com/constructor-app/constructor-backend-go/internal/fixtures"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/constructor-app/constructor-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (ScheduleService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Load(fixtures.DemoData())
	return NewScheduleService(memory.NewScheduleRepository(store), memory.NewProjectRepository(store)), store
}

func asUser(store *memory.Store, userID string) context.Context {
	repo := memory.NewUserRepository(store)
	u, err := repo.GetByID(context.Background(), userID)
	if err != nil {
		panic(err)
	}
	return actor.WithUser(context.Background(), u)
}

func TestScheduleList(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	phases, err := svc.List(asUser(store, "u6"), "p1")
	require.NoError(t, err)
	assert.Len(t, phases, 7)
}

func TestScheduleEditIsPrivileged(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("team member cannot add a phase", func(t *testing.T) {
		_, err := svc.AddPhase(asUser(store, "u6"), "p1", schedule.CreatePhaseRequest{
			Name: "Landscaping", StartDate: "2025-05-01", EndDate: "2025-06-01",
		})
		assert.ErrorIs(t, err, schedule.ErrEditPrivileged)
	})

	t.Run("manager adds a phase starting from zero", func(t *testing.T) {
		created, err := svc.AddPhase(asUser(store, "u1"), "p1", schedule.CreatePhaseRequest{
			Name: "Landscaping", StartDate: "2025-05-01", EndDate: "2025-06-01",
		})
		require.NoError(t, err)
		assert.Equal(t, string(schedule.PhaseNotStarted), created.Status)
		assert.Zero(t, created.Progress)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := svc.AddPhase(asUser(store, "u1"), "p1", schedule.CreatePhaseRequest{
			Name: "Time travel", StartDate: "2025-06-01", EndDate: "2025-05-01",
		})
		assert.Error(t, err)
	})
}

func TestScheduleUpdateProgress(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("full progress completes the phase", func(t *testing.T) {
		updated, err := svc.UpdateProgress(asUser(store, "u1"), "s4", schedule.UpdatePhaseProgressRequest{
			Progress: 100,
		})
		require.NoError(t, err)
		assert.Equal(t, string(schedule.PhaseCompleted), updated.Status)
	})

	t.Run("explicit status wins", func(t *testing.T) {
		updated, err := svc.UpdateProgress(asUser(store, "u1"), "s10", schedule.UpdatePhaseProgressRequest{
			Progress: 75, Status: string(schedule.PhaseDelayed),
		})
		require.NoError(t, err)
		assert.Equal(t, string(schedule.PhaseDelayed), updated.Status)
		assert.Equal(t, 75, updated.Progress)
	})

	t.Run("progress outside the range is rejected", func(t *testing.T) {
		_, err := svc.UpdateProgress(asUser(store, "u1"), "s4", schedule.UpdatePhaseProgressRequest{
			Progress: 120,
		})
		assert.Error(t, err)
	})

	t.Run("team member cannot update", func(t *testing.T) {
		_, err := svc.UpdateProgress(asUser(store, "u6"), "s4", schedule.UpdatePhaseProgressRequest{
			Progress: 80,
		})
		assert.ErrorIs(t, err, schedule.ErrEditPrivileged)
	})
}
