package main

import (
	"fmt"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/config"
	"github.com/constructor-app/constructor-backend-go/internal/fixtures"
	appHTTP "github.com/constructor-app/constructor-backend-go/internal/handler/http"
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
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store := memory.NewStore()
	if cfg.App.SeedDemo {
		store.Load(fixtures.DemoData())
	}

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

	userSvc := userService.NewUserService(userRepo)
	projectSvc := projectService.NewProjectService(projectRepo, userRepo)
	inventorySvc := inventoryService.NewInventoryService(materialRepo, projectRepo)
	transactionSvc := transactionService.NewTransactionService(transactionRepo, projectRepo)
	taskSvc := taskService.NewTaskService(taskRepo, projectRepo)
	noteSvc := noteService.NewNoteService(noteRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, projectRepo)
	reportSvc := reportService.NewReportService(reportRepo, projectRepo)
	recordsSvc := recordsService.NewRecordsService(documentRepo, invoiceRepo, projectRepo)
	dashboardSvc := dashboardService.NewDashboardService(projectRepo, taskRepo, materialRepo)

	router := appHTTP.NewRouter(
		cfg,
		userRepo,
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewProjectHandler(projectSvc),
		appHTTP.NewInventoryHandler(inventorySvc),
		appHTTP.NewTransactionHandler(transactionSvc),
		appHTTP.NewTaskHandler(taskSvc),
		appHTTP.NewNoteHandler(noteSvc),
		appHTTP.NewScheduleHandler(scheduleSvc),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewRecordsHandler(recordsSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
