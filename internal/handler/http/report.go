package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/report"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	reportservice "github.com/constructor-app/constructor-backend-go/internal/service/report"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService reportservice.ReportService
}

func NewReportHandler(reportService reportservice.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// List implements ReportHandler.
func (h *ReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	reports, err := h.reportService.List(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// Create implements ReportHandler.
func (h *ReportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req report.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.reportService.Create(r.Context(), projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Progress report submitted successfully", created)
}
