package transaction

import (
	"context"
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/domain/transaction"
	"github.com/constructor-app/constructor-backend-go/internal/fixtures"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/constructor-app/constructor-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (TransactionService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Load(fixtures.DemoData())
	return NewTransactionService(memory.NewTransactionRepository(store), memory.NewProjectRepository(store)), store
}

func asUser(store *memory.Store, userID string) context.Context {
	repo := memory.NewUserRepository(store)
	u, err := repo.GetByID(context.Background(), userID)
	if err != nil {
		panic(err)
	}
	return actor.WithUser(context.Background(), u)
}

func TestTransactionListVisible(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("privileged user sees all project transactions newest first", func(t *testing.T) {
		resp, err := svc.ListVisible(asUser(store, "u1"), "p1")
		require.NoError(t, err)
		require.Len(t, resp.Transactions, 4)
		assert.Equal(t, "tr4", resp.Transactions[0].ID)
		assert.Equal(t, "tr1", resp.Transactions[3].ID)
	})

	t.Run("team member sees recorded by or involving them", func(t *testing.T) {
		resp, err := svc.ListVisible(asUser(store, "u6"), "p1")
		require.NoError(t, err)
		require.Len(t, resp.Transactions, 2)
		// tr2 recorded by u6, tr3 involves u6; newest first
		assert.Equal(t, "tr3", resp.Transactions[0].ID)
		assert.Equal(t, "tr2", resp.Transactions[1].ID)
	})

	t.Run("client sees nothing", func(t *testing.T) {
		resp, err := svc.ListVisible(asUser(store, "u7"), "p1")
		require.NoError(t, err)
		assert.Empty(t, resp.Transactions)
		assert.Zero(t, resp.TotalIncoming)
		assert.Zero(t, resp.TotalExpenses)
	})

	t.Run("totals cover only the visible subset", func(t *testing.T) {
		resp, err := svc.ListVisible(asUser(store, "u6"), "p1")
		require.NoError(t, err)
		assert.Equal(t, float64(0), resp.TotalIncoming)
		assert.Equal(t, float64(250000+150000), resp.TotalExpenses)
		assert.Equal(t, float64(-400000), resp.NetBalance)
	})
}

func TestTransactionAdd(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)

	t.Run("recorder is stamped from the acting user", func(t *testing.T) {
		created, err := svc.Add(asUser(store, "u6"), "p1", transaction.CreateTransactionRequest{
			Date:        "2024-08-10",
			Description: "Scaffolding rental",
			Type:        string(transaction.TypeExpense),
			Category:    string(transaction.CategoryLogistics),
			Amount:      45000,
		})
		require.NoError(t, err)
		assert.Equal(t, "u6", created.RecordedByID)
	})

	t.Run("empty involvement lists are normalized away", func(t *testing.T) {
		created, err := svc.Add(asUser(store, "u1"), "p1", transaction.CreateTransactionRequest{
			Date:             "2024-08-11",
			Description:      "Diesel for generator",
			Type:             string(transaction.TypeExpense),
			Category:         string(transaction.CategoryLogistics),
			Amount:           30000,
			InvolvedUserIDs:  []string{},
			ExternalInvolved: []string{},
		})
		require.NoError(t, err)
		assert.Nil(t, created.InvolvedUserIDs)
		assert.Nil(t, created.ExternalInvolved)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		_, err := svc.Add(asUser(store, "u1"), "p1", transaction.CreateTransactionRequest{
			Date:        "2024-08-11",
			Description: "Mystery money",
			Type:        "Sideways",
			Category:    string(transaction.CategoryMiscellaneous),
			Amount:      1,
		})
		assert.Error(t, err)
	})
}
