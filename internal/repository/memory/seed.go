package memory

import (
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
)

// SeedData is a full dataset loaded into the store at process start.
type SeedData struct {
	Users        []user.User
	Projects     []project.Project
	Materials    []material.Material
	Transactions []transaction.Transaction
	Tasks        []task.Task
	Notes        []note.Note
	Phases       []schedule.Phase
	Reports      []report.ProgressReport
	Invoices     []invoice.Invoice
	Documents    []document.Document
}

// Load replaces the store contents with data.
func (s *Store) Load(data SeedData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = data.Users
	s.projects = data.Projects
	s.materials = data.Materials
	s.transactions = data.Transactions
	s.tasks = data.Tasks
	s.notes = data.Notes
	s.phases = data.Phases
	s.reports = data.Reports
	s.invoices = data.Invoices
	s.documents = data.Documents
}
