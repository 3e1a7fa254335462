package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/note"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	noteservice "github.com/constructor-app/constructor-backend-go/internal/service/note"
	"github.com/go-chi/chi/v5"
)

type NoteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NoteHandlerImpl struct {
	noteService noteservice.NoteService
}

func NewNoteHandler(noteService noteservice.NoteService) NoteHandler {
	return &NoteHandlerImpl{noteService: noteService}
}

// List implements NoteHandler.
func (h *NoteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	notes, err := h.noteService.ListMine(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notes)
}

// Create implements NoteHandler.
func (h *NoteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req note.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create note decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.noteService.Create(r.Context(), projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Note created successfully", created)
}

// Update implements NoteHandler.
func (h *NoteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		response.BadRequest(w, "Note ID is required", nil)
		return
	}

	var req note.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update note decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.noteService.Update(r.Context(), noteID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements NoteHandler.
func (h *NoteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		response.BadRequest(w, "Note ID is required", nil)
		return
	}

	if err := h.noteService.Delete(r.Context(), noteID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note deleted successfully", nil)
}
