package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/transaction"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	transactionservice "github.com/constructor-app/constructor-backend-go/internal/service/transaction"
	"github.com/go-chi/chi/v5"
)

type TransactionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
}

type TransactionHandlerImpl struct {
	transactionService transactionservice.TransactionService
}

func NewTransactionHandler(transactionService transactionservice.TransactionService) TransactionHandler {
	return &TransactionHandlerImpl{transactionService: transactionService}
}

// List implements TransactionHandler.
func (h *TransactionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	transactions, err := h.transactionService.ListVisible(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transactions)
}

// Add implements TransactionHandler.
func (h *TransactionHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req transaction.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.transactionService.Add(r.Context(), projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded successfully", created)
}
