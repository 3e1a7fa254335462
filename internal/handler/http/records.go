package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/document"
	"github.com/constructor-app/constructor-backend-go/internal/domain/invoice"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	recordsservice "github.com/constructor-app/constructor-backend-go/internal/service/records"
	"github.com/go-chi/chi/v5"
)

type RecordsHandler interface {
	ListDocuments(w http.ResponseWriter, r *http.Request)
	AddDocument(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	AddInvoice(w http.ResponseWriter, r *http.Request)
}

type RecordsHandlerImpl struct {
	recordsService recordsservice.RecordsService
}

func NewRecordsHandler(recordsService recordsservice.RecordsService) RecordsHandler {
	return &RecordsHandlerImpl{recordsService: recordsService}
}

// ListDocuments implements RecordsHandler.
func (h *RecordsHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	documents, err := h.recordsService.ListDocuments(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, documents)
}

// AddDocument implements RecordsHandler.
func (h *RecordsHandlerImpl) AddDocument(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req document.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddDocument decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recordsService.AddDocument(r.Context(), projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document added successfully", created)
}

// ListInvoices implements RecordsHandler.
func (h *RecordsHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	invoices, err := h.recordsService.ListInvoices(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invoices)
}

// AddInvoice implements RecordsHandler.
func (h *RecordsHandlerImpl) AddInvoice(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req invoice.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddInvoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recordsService.AddInvoice(r.Context(), projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created successfully", created)
}
