package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/config"
	"github.com/constructor-app/constructor-backend-go/internal/fixtures"
	"github.com/constructor-app/constructor-backend-go/internal/repository/memory"
	dashboardService "github.com/constructor-app/constructor-backend-go/internal/service/dashboard"
	inventoryService "github.com/constructor-app/constructor-backend-go/internal/service/inventory"
	noteService "github.com/constructor-app/constructor-backend-go/internal/service/note"
	projectService "github.com/constructor-app/constructor-backend-go/internal/service/project"
	recordsService "github.com/constructor-app/constructor-backend-go/internal/service/records"
	reportService "github.com/constructor-app/constructor-backend-go/internal/service/report"
	scheduleService "github.com/constructor-app/constructor-backend-go/internal/service/schedule"
	taskService "github.com/constructor-app/constructor-backend-go/internal/service/task"
	transactionService "github.com/constructor-app/constructor-backend-go/internal/service/transaction"
	userService "github.com/constructor-app/constructor-backend-go/internal/service/user"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	cfg := &config.Config{App: config.AppConfig{
		Env:         "test",
		FrontendURL: "http://localhost:3000",
	}}

	store := memory.NewStore()
	store.Load(fixtures.DemoData())

	userRepo := memory.NewUserRepository(store)
	projectRepo := memory.NewProjectRepository(store)
	materialRepo := memory.NewMaterialRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)
	taskRepo := memory.NewTaskRepository(store)
	noteRepo := memory.NewNoteRepository(store)
	scheduleRepo := memory.NewScheduleRepository(store)
	reportRepo := memory.NewReportRepository(store)
	documentRepo := memory.NewDocumentRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)

	return NewRouter(
		cfg,
		userRepo,
		NewUserHandler(userService.NewUserService(userRepo)),
		NewProjectHandler(projectService.NewProjectService(projectRepo, userRepo)),
		NewInventoryHandler(inventoryService.NewInventoryService(materialRepo, projectRepo)),
		NewTransactionHandler(transactionService.NewTransactionService(transactionRepo, projectRepo)),
		NewTaskHandler(taskService.NewTaskService(taskRepo, projectRepo)),
		NewNoteHandler(noteService.NewNoteService(noteRepo)),
		NewScheduleHandler(scheduleService.NewScheduleService(scheduleRepo, projectRepo)),
		NewReportHandler(reportService.NewReportService(reportRepo, projectRepo)),
		NewRecordsHandler(recordsService.NewRecordsService(documentRepo, invoiceRepo, projectRepo)),
		NewDashboardHandler(dashboardService.NewDashboardService(projectRepo, taskRepo, materialRepo)),
	)
}

func doRequest(t *testing.T, router http.Handler, method, path, actingUser string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actingUser != "" {
		req.Header.Set("X-Acting-User", actingUser)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestRouterActingUser(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	t.Run("missing header is unauthorized", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/projects", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/projects", "ghost", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("known user gets the filtered list", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/projects", "u7", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "p1", envelope.Data[0].ID)
	})
}

func TestRouterTabs(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/projects/p1/tabs?current=budget", "u7", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, "overview", data["active_tab"])
}

func TestRouterPrivilegedRoutes(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	t.Run("team member cannot set permissions", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, "/api/v1/projects/p1/members/u6/permissions", "u6",
			map[string]any{"allowed_tabs": []string{"overview"}})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager sets and the member sees the override", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, "/api/v1/projects/p1/members/u6/permissions", "u1",
			map[string]any{"allowed_tabs": []string{"overview", "documents"}})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, router, http.MethodGet, "/api/v1/projects/p1/tabs", "u6", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, []any{"overview", "documents"}, data["visible_ids"])
	})
}

func TestRouterDashboard(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard", "u5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	projects, ok := data["projects"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(6), projects["total"])
}

func TestRouterHeartbeatAndMetrics(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
