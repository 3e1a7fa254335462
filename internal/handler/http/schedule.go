package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/schedule"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	scheduleservice "github.com/constructor-app/constructor-backend-go/internal/service/schedule"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	AddPhase(w http.ResponseWriter, r *http.Request)
	UpdateProgress(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService scheduleservice.ScheduleService
}

func NewScheduleHandler(scheduleService scheduleservice.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	phases, err := h.scheduleService.List(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, phases)
}

// AddPhase implements ScheduleHandler.
func (h *ScheduleHandlerImpl) AddPhase(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req schedule.CreatePhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddPhase decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.AddPhase(r.Context(), projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Phase added successfully", created)
}

// UpdateProgress implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	phaseID := chi.URLParam(r, "id")
	if phaseID == "" {
		response.BadRequest(w, "Phase ID is required", nil)
		return
	}

	var req schedule.UpdatePhaseProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProgress decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.scheduleService.UpdateProgress(r.Context(), phaseID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}
