package note

import "context"

type NoteRepository interface {
	GetByID(ctx context.Context, id string) (Note, error)
	ListByProject(ctx context.Context, projectID string) ([]Note, error)
	Create(ctx context.Context, newNote Note) (Note, error)
	Update(ctx context.Context, updated Note) (Note, error)
	Delete(ctx context.Context, id string) error
}
