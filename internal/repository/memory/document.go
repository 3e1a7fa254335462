package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/document"
)

type DocumentRepositoryImpl struct {
	store *Store
}

func NewDocumentRepository(store *Store) document.DocumentRepository {
	return &DocumentRepositoryImpl{store: store}
}

func (r *DocumentRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]document.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]document.Document, 0)
	for _, d := range r.store.documents {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *DocumentRepositoryImpl) Create(ctx context.Context, newDocument document.Document) (document.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.documents = append(r.store.documents, newDocument)
	return newDocument, nil
}
