package project

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	AddMember(ctx context.Context, projectID string, member user.User) error
	RemoveMember(ctx context.Context, projectID, userID string) error
	SetMemberPermissions(ctx context.Context, projectID, userID string, allowedTabs []string) error
}
