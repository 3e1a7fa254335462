package task

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrAssigneeNotMember  = errors.New("assignee is not a project member")
	ErrTaskAccessDenied   = errors.New("no access to this task")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrClientCannotCreate = errors.New("clients cannot create tasks")
)
