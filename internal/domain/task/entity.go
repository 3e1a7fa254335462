package task

import (
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

var StatusValues = []string{
	string(StatusToDo),
	string(StatusInProgress),
	string(StatusDone),
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var PriorityValues = []string{
	string(PriorityHigh),
	string(PriorityMedium),
	string(PriorityLow),
}

type Task struct {
	ID        string
	ProjectID string
	Title     string
	Status    Status
	Assignee  *user.User
	DueDate   time.Time
	Priority  Priority
}

// IsVisibleTo reports whether u may see this task. Privileged roles see all
// project tasks; everyone else sees only tasks assigned to them. Unassigned
// tasks are never visible to non-privileged users.
func (t *Task) IsVisibleTo(u user.User) bool {
	if u.IsPrivileged() {
		return true
	}
	return t.Assignee != nil && t.Assignee.ID == u.ID
}

// FilterVisible returns the order-preserving subset of tasks u may see.
func FilterVisible(tasks []Task, u user.User) []Task {
	if u.IsPrivileged() {
		return tasks
	}
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsVisibleTo(u) {
			visible = append(visible, t)
		}
	}
	return visible
}
