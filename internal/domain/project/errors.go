package project

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrMemberNotFound       = errors.New("project member not found")
	ErrMemberAlreadyExists  = errors.New("user is already a project member")
	ErrCannotRemoveSelf     = errors.New("cannot remove yourself from the project")
	ErrUnknownTab           = errors.New("unknown tab id")
	ErrTabHidden            = errors.New("tab is not visible to this user")
	ErrProjectAccessDenied  = errors.New("no access to this project")
	ErrManageTeamPrivileged = errors.New("managing the project team requires a privileged role")
)
