package memory

import (
	"sync"

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

// Store is the process-wide in-memory dataset. Collections keep insertion
// order; one RWMutex guards them all so a read immediately after a write
// observes the write.
type Store struct {
	mu sync.RWMutex

	users        []user.User
	projects     []project.Project
	materials    []material.Material
	transactions []transaction.Transaction
	tasks        []task.Task
	notes        []note.Note
	phases       []schedule.Phase
	reports      []report.ProgressReport
	invoices     []invoice.Invoice
	documents    []document.Document
}

func NewStore() *Store {
	return &Store{}
}
