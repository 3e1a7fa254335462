package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

type ProjectRepositoryImpl struct {
	store *Store
}

func NewProjectRepository(store *Store) project.ProjectRepository {
	return &ProjectRepositoryImpl{store: store}
}

// cloneProject deep-copies the mutable parts so callers cannot alias store
// state.
func cloneProject(p project.Project) project.Project {
	out := p
	out.Members = make([]user.User, len(p.Members))
	copy(out.Members, p.Members)
	if p.MemberPermissions != nil {
		out.MemberPermissions = make(map[string][]string, len(p.MemberPermissions))
		for k, v := range p.MemberPermissions {
			tabs := make([]string, len(v))
			copy(tabs, v)
			out.MemberPermissions[k] = tabs
		}
	}
	return out
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.projects {
		if p.ID == id {
			return cloneProject(p), nil
		}
	}
	return project.Project{}, project.ErrProjectNotFound
}

func (r *ProjectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]project.Project, 0, len(r.store.projects))
	for _, p := range r.store.projects {
		out = append(out, cloneProject(p))
	}
	return out, nil
}

func (r *ProjectRepositoryImpl) AddMember(ctx context.Context, projectID string, member user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.projects {
		if r.store.projects[i].ID != projectID {
			continue
		}
		for _, m := range r.store.projects[i].Members {
			if m.ID == member.ID {
				return project.ErrMemberAlreadyExists
			}
		}
		r.store.projects[i].Members = append(r.store.projects[i].Members, member)
		return nil
	}
	return project.ErrProjectNotFound
}

func (r *ProjectRepositoryImpl) RemoveMember(ctx context.Context, projectID, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.projects {
		if r.store.projects[i].ID != projectID {
			continue
		}
		members := r.store.projects[i].Members
		for j, m := range members {
			if m.ID == userID {
				r.store.projects[i].Members = append(members[:j:j], members[j+1:]...)
				return nil
			}
		}
		return project.ErrMemberNotFound
	}
	return project.ErrProjectNotFound
}

func (r *ProjectRepositoryImpl) SetMemberPermissions(ctx context.Context, projectID, userID string, allowedTabs []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.projects {
		if r.store.projects[i].ID != projectID {
			continue
		}
		if r.store.projects[i].MemberPermissions == nil {
			r.store.projects[i].MemberPermissions = make(map[string][]string)
		}
		tabs := make([]string, len(allowedTabs))
		copy(tabs, allowedTabs)
		// replace, never merge: an empty list deliberately hides every tab
		r.store.projects[i].MemberPermissions[userID] = tabs
		return nil
	}
	return project.ErrProjectNotFound
}
