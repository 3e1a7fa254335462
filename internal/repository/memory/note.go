package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/note"
)

type NoteRepositoryImpl struct {
	store *Store
}

func NewNoteRepository(store *Store) note.NoteRepository {
	return &NoteRepositoryImpl{store: store}
}

func (r *NoteRepositoryImpl) GetByID(ctx context.Context, id string) (note.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, n := range r.store.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return note.Note{}, note.ErrNoteNotFound
}

func (r *NoteRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]note.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]note.Note, 0)
	for _, n := range r.store.notes {
		if n.ProjectID == projectID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, newNote note.Note) (note.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notes = append(r.store.notes, newNote)
	return newNote, nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, updated note.Note) (note.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notes {
		if r.store.notes[i].ID == updated.ID {
			r.store.notes[i] = updated
			return updated, nil
		}
	}
	return note.Note{}, note.ErrNoteNotFound
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notes {
		if r.store.notes[i].ID == id {
			r.store.notes = append(r.store.notes[:i:i], r.store.notes[i+1:]...)
			return nil
		}
	}
	return note.ErrNoteNotFound
}
