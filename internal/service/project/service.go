package project

import (
	"context"
	"fmt"

	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/google/uuid"
)

type ProjectService interface {
	// ListVisible returns the projects the acting user may see, in store order.
	ListVisible(ctx context.Context) ([]project.ProjectResponse, error)
	// Get returns one project, gated by the same visibility rule as ListVisible.
	Get(ctx context.Context, id string) (project.ProjectResponse, error)
	// Tabs resolves the effective visible tabs for the acting user on a project
	// and re-selects the active tab against that set.
	Tabs(ctx context.Context, projectID, currentTab string) (project.TabsResponse, error)
	AddMember(ctx context.Context, projectID string, req project.AddMemberRequest) (user.UserResponse, error)
	RemoveMember(ctx context.Context, projectID, userID string) error
	SetPermissions(ctx context.Context, projectID, userID string, req project.SetPermissionsRequest) error
}

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
	userRepo    user.UserRepository
}

func NewProjectService(projectRepo project.ProjectRepository, userRepo user.UserRepository) ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func (s *ProjectServiceImpl) ListVisible(ctx context.Context) ([]project.ProjectResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return project.ToResponses(project.FilterVisible(all, actingUser)), nil
}

func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (project.ProjectResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if !p.VisibleTo(actingUser) {
		return project.ProjectResponse{}, project.ErrProjectAccessDenied
	}

	return project.ToResponse(p), nil
}

func (s *ProjectServiceImpl) Tabs(ctx context.Context, projectID, currentTab string) (project.TabsResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return project.TabsResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return project.TabsResponse{}, err
	}
	if !p.VisibleTo(actingUser) {
		return project.TabsResponse{}, project.ErrProjectAccessDenied
	}

	visible := p.EffectiveVisibleTabs(actingUser.ID, actingUser.Role)
	tabs := make([]project.Tab, 0, len(visible))
	for _, t := range project.AllProjectTabs {
		for _, id := range visible {
			if t.ID == id {
				tabs = append(tabs, t)
				break
			}
		}
	}

	return project.TabsResponse{
		Tabs:      tabs,
		VisibleID: visible,
		ActiveTab: project.ResolveActiveTab(visible, currentTab),
	}, nil
}

func (s *ProjectServiceImpl) AddMember(ctx context.Context, projectID string, req project.AddMemberRequest) (user.UserResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !actingUser.IsPrivileged() {
		return user.UserResponse{}, project.ErrManageTeamPrivileged
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, err
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	newUser := user.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: fmt.Sprintf("https://picsum.photos/seed/%s/50/50", req.Email),
		Role:      user.Role(req.Role),
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	// no tab override is granted here: the new member falls back to the
	// role default until an admin sets permissions explicitly
	if err := s.projectRepo.AddMember(ctx, projectID, created); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

func (s *ProjectServiceImpl) RemoveMember(ctx context.Context, projectID, userID string) error {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return err
	}
	if !actingUser.IsPrivileged() {
		return project.ErrManageTeamPrivileged
	}
	if actingUser.ID == userID {
		return project.ErrCannotRemoveSelf
	}

	return s.projectRepo.RemoveMember(ctx, projectID, userID)
}

func (s *ProjectServiceImpl) SetPermissions(ctx context.Context, projectID, userID string, req project.SetPermissionsRequest) error {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return err
	}
	if !actingUser.IsPrivileged() {
		return project.ErrManageTeamPrivileged
	}

	if err := req.Validate(); err != nil {
		return err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !p.HasMember(userID) {
		return project.ErrMemberNotFound
	}

	return s.projectRepo.SetMemberPermissions(ctx, projectID, userID, req.AllowedTabs)
}
