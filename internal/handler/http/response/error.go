package response

import (
	"errors"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/document"
	"github.com/constructor-app/constructor-backend-go/internal/domain/invoice"
	"github.com/constructor-app/constructor-backend-go/internal/domain/material"
	"github.com/constructor-app/constructor-backend-go/internal/domain/note"
	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/report"
	"github.com/constructor-app/constructor-backend-go/internal/domain/schedule"
	"github.com/constructor-app/constructor-backend-go/internal/domain/task"
	"github.com/constructor-app/constructor-backend-go/internal/domain/transaction"
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Acting user and role errors
	case errors.Is(err, user.ErrActingUserRequired):
		Unauthorized(w, "X-Acting-User header is required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrPrivilegedRoleRequired):
		Forbidden(w, "Privileged role required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectAccessDenied):
		Forbidden(w, "No access to this project")
	case errors.Is(err, project.ErrManageTeamPrivileged):
		Forbidden(w, "Managing the project team requires a privileged role")
	case errors.Is(err, project.ErrMemberNotFound):
		NotFound(w, "Project member not found")
	case errors.Is(err, project.ErrMemberAlreadyExists):
		Conflict(w, "User is already a project member")
	case errors.Is(err, project.ErrCannotRemoveSelf):
		BadRequest(w, "You cannot remove yourself from the project", nil)
	case errors.Is(err, project.ErrUnknownTab):
		BadRequest(w, "Unknown tab id", nil)
	case errors.Is(err, project.ErrTabHidden):
		Forbidden(w, "Tab is not visible to this user")

	// Inventory domain errors
	case errors.Is(err, material.ErrMaterialNotFound):
		NotFound(w, "Material not found")
	case errors.Is(err, material.ErrInsufficientStock):
		BadRequest(w, "Quantity used exceeds current stock", nil)

	// Transaction domain errors
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrTaskAccessDenied):
		Forbidden(w, "No access to this task")
	case errors.Is(err, task.ErrAssigneeNotMember):
		BadRequest(w, "Assignee is not a project member", nil)
	case errors.Is(err, task.ErrClientCannotCreate):
		Forbidden(w, "Clients cannot create tasks")
	case errors.Is(err, task.ErrInvalidTaskStatus):
		BadRequest(w, "Invalid task status", nil)

	// Note domain errors
	case errors.Is(err, note.ErrNoteNotFound):
		NotFound(w, "Note not found")
	case errors.Is(err, note.ErrNotNoteCreator):
		Forbidden(w, "Only the note creator may modify it")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrPhaseNotFound):
		NotFound(w, "Schedule phase not found")
	case errors.Is(err, schedule.ErrEditPrivileged):
		Forbidden(w, "Editing the schedule requires a privileged role")
	case errors.Is(err, schedule.ErrInvalidProgress):
		BadRequest(w, "Progress must be between 0 and 100", nil)

	// Report, document and invoice errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Progress report not found")
	case errors.Is(err, report.ErrClientCannotWrite):
		Forbidden(w, "Clients cannot submit progress reports")
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvoiceNumberExists):
		Conflict(w, "Invoice number already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
