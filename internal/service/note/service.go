package note

import (
	"context"
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/note"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/google/uuid"
)

type NoteService interface {
	// ListMine returns the acting user's own notes on a project. Notes are
	// never shared.
	ListMine(ctx context.Context, projectID string) ([]note.NoteResponse, error)
	Create(ctx context.Context, projectID string, req note.CreateNoteRequest) (note.NoteResponse, error)
	Update(ctx context.Context, noteID string, req note.UpdateNoteRequest) (note.NoteResponse, error)
	Delete(ctx context.Context, noteID string) error
}

type NoteServiceImpl struct {
	noteRepo note.NoteRepository
}

func NewNoteService(noteRepo note.NoteRepository) NoteService {
	return &NoteServiceImpl{noteRepo: noteRepo}
}

func (s *NoteServiceImpl) ListMine(ctx context.Context, projectID string) ([]note.NoteResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return note.ToResponses(note.FilterVisible(notes, actingUser)), nil
}

func (s *NoteServiceImpl) Create(ctx context.Context, projectID string, req note.CreateNoteRequest) (note.NoteResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return note.NoteResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return note.NoteResponse{}, err
	}

	newNote := note.Note{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Title:       req.Title,
		Content:     req.Content,
		LastUpdated: time.Now().UTC(),
		CreatorID:   actingUser.ID,
	}

	created, err := s.noteRepo.Create(ctx, newNote)
	if err != nil {
		return note.NoteResponse{}, err
	}

	return note.ToResponse(created), nil
}

func (s *NoteServiceImpl) Update(ctx context.Context, noteID string, req note.UpdateNoteRequest) (note.NoteResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return note.NoteResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return note.NoteResponse{}, err
	}

	existing, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return note.NoteResponse{}, err
	}
	if existing.CreatorID != actingUser.ID {
		return note.NoteResponse{}, note.ErrNotNoteCreator
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.LastUpdated = time.Now().UTC()

	updated, err := s.noteRepo.Update(ctx, existing)
	if err != nil {
		return note.NoteResponse{}, err
	}

	return note.ToResponse(updated), nil
}

func (s *NoteServiceImpl) Delete(ctx context.Context, noteID string) error {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if existing.CreatorID != actingUser.ID {
		return note.ErrNotNoteCreator
	}

	return s.noteRepo.Delete(ctx, noteID)
}
