package project

import (
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

type Status string

const (
	StatusOnTrack   Status = "On Track"
	StatusDelayed   Status = "Delayed"
	StatusCompleted Status = "Completed"
	StatusPlanning  Status = "Planning"
)

var StatusValues = []string{
	string(StatusOnTrack),
	string(StatusDelayed),
	string(StatusCompleted),
	string(StatusPlanning),
}

type Project struct {
	ID         string
	Name       string
	Location   string
	StartDate  time.Time
	DueDate    time.Time
	Budget     float64
	ActualCost float64
	Status     Status
	Progress   int
	Members    []user.User

	// ClientID references the project's external client, if any.
	ClientID string

	// MemberPermissions maps a user id to an explicit list of allowed tab ids.
	// An absent entry falls back to the role default; an explicit empty list
	// hides every tab for that member.
	MemberPermissions map[string][]string
}

// VisibleTo reports whether u may see this project. Privileged roles see every
// project, clients see projects they are the client of, everyone else sees
// projects they are a member of.
func (p *Project) VisibleTo(u user.User) bool {
	if u.IsPrivileged() {
		return true
	}
	if u.IsClient() {
		return p.ClientID == u.ID
	}
	return p.HasMember(u.ID)
}

// HasMember reports whether userID appears in the membership list.
func (p *Project) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// FilterVisible returns the order-preserving subset of projects u may see.
// Dashboard counts and the project list both go through this one function.
func FilterVisible(projects []Project, u user.User) []Project {
	if u.IsPrivileged() {
		return projects
	}
	visible := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.VisibleTo(u) {
			visible = append(visible, p)
		}
	}
	return visible
}
