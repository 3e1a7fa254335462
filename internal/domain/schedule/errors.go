package schedule

import "errors"

var (
	ErrPhaseNotFound       = errors.New("schedule phase not found")
	ErrEditPrivileged      = errors.New("editing the schedule requires a privileged role")
	ErrInvalidProgress     = errors.New("progress must be between 0 and 100")
	ErrEndBeforeStart      = errors.New("end date cannot be before start date")
	ErrInvalidPhaseStatus  = errors.New("invalid phase status")
)
