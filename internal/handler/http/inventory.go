package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/material"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	inventoryservice "github.com/constructor-app/constructor-backend-go/internal/service/inventory"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	AddMaterial(w http.ResponseWriter, r *http.Request)
	LogUsage(w http.ResponseWriter, r *http.Request)
}

type InventoryHandlerImpl struct {
	inventoryService inventoryservice.InventoryService
}

func NewInventoryHandler(inventoryService inventoryservice.InventoryService) InventoryHandler {
	return &InventoryHandlerImpl{inventoryService: inventoryService}
}

// List implements InventoryHandler.
func (h *InventoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	materials, err := h.inventoryService.ListVisible(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, materials)
}

// AddMaterial implements InventoryHandler.
func (h *InventoryHandlerImpl) AddMaterial(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req material.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddMaterial decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.inventoryService.AddMaterial(r.Context(), projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Material added successfully", created)
}

// LogUsage implements InventoryHandler.
func (h *InventoryHandlerImpl) LogUsage(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "id")
	if materialID == "" {
		response.BadRequest(w, "Material ID is required", nil)
		return
	}

	var req material.LogUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("LogUsage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.inventoryService.LogUsage(r.Context(), materialID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}
