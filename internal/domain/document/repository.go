package document

import "context"

type DocumentRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]Document, error)
	Create(ctx context.Context, newDocument Document) (Document, error)
}
