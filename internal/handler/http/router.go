package http

import (
	"log/slog"
	"os"

	"github.com/constructor-app/constructor-backend-go/internal/config"
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	cfg *config.Config,
	userRepo user.UserRepository,
	userHandler UserHandler,
	projectHandler ProjectHandler,
	inventoryHandler InventoryHandler,
	transactionHandler TransactionHandler,
	taskHandler TaskHandler,
	noteHandler NoteHandler,
	scheduleHandler ScheduleHandler,
	reportHandler ReportHandler,
	recordsHandler RecordsHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "constructor-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Acting-User"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.ActingUser(userRepo))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
		})

		r.Get("/dashboard", dashboardHandler.Summary)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", projectHandler.Get)
				r.Get("/tabs", projectHandler.Tabs)

				// Privileged only
				r.Group(func(r chi.Router) {
					r.Use(middleware.PrivilegedOnly)
					r.Post("/members", projectHandler.AddMember)
					r.Delete("/members/{userID}", projectHandler.RemoveMember)
					r.Put("/members/{userID}/permissions", projectHandler.SetPermissions)
				})

				r.Get("/materials", inventoryHandler.List)
				r.Post("/materials", inventoryHandler.AddMaterial)

				r.Get("/transactions", transactionHandler.List)
				r.Post("/transactions", transactionHandler.Add)

				r.Get("/tasks", taskHandler.List)
				r.Post("/tasks", taskHandler.Create)

				r.Get("/notes", noteHandler.List)
				r.Post("/notes", noteHandler.Create)

				r.Get("/schedule", scheduleHandler.List)
				r.Post("/schedule", scheduleHandler.AddPhase)

				r.Get("/progress-reports", reportHandler.List)
				r.Post("/progress-reports", reportHandler.Create)

				r.Get("/documents", recordsHandler.ListDocuments)
				r.Post("/documents", recordsHandler.AddDocument)

				r.Get("/invoices", recordsHandler.ListInvoices)
				r.Post("/invoices", recordsHandler.AddInvoice)
			})
		})

		r.Post("/materials/{id}/usage", inventoryHandler.LogUsage)
		r.Patch("/tasks/{id}/status", taskHandler.UpdateStatus)
		r.Patch("/schedule/{id}/progress", scheduleHandler.UpdateProgress)

		r.Route("/notes/{id}", func(r chi.Router) {
			r.Put("/", noteHandler.Update)
			r.Delete("/", noteHandler.Delete)
		})
	})

	return r
}
