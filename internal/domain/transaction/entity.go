package transaction

import (
	"sort"
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

type Type string

const (
	TypeIncoming Type = "Incoming"
	TypeExpense  Type = "Expense"
)

var TypeValues = []string{
	string(TypeIncoming),
	string(TypeExpense),
}

type Category string

const (
	CategoryClientPayment Category = "Client Payment"
	CategoryLabor         Category = "Labor"
	CategoryMaterials     Category = "Materials"
	CategoryLogistics     Category = "Logistics"
	CategoryPermits       Category = "Permits"
	CategorySubcontractor Category = "Subcontractor"
	CategoryMiscellaneous Category = "Miscellaneous"
)

var CategoryValues = []string{
	string(CategoryClientPayment),
	string(CategoryLabor),
	string(CategoryMaterials),
	string(CategoryLogistics),
	string(CategoryPermits),
	string(CategorySubcontractor),
	string(CategoryMiscellaneous),
}

type Transaction struct {
	ID          string
	ProjectID   string
	Date        time.Time
	Description string
	Type        Type
	Category    Category
	Amount      float64
	ReceiptURL  string

	// RecordedByID is the user who logged the transaction.
	RecordedByID string

	// InvolvedUserIDs tags internal members on the transaction. Nil when
	// nobody is tagged; never stored as an empty slice.
	InvolvedUserIDs []string

	// ExternalInvolved names external parties (subcontractors, suppliers).
	// Same nil convention as InvolvedUserIDs.
	ExternalInvolved []string
}

// IsVisibleTo reports whether u may see this transaction. Privileged roles see
// all, team members see what they recorded or are tagged in, clients see none.
func (t *Transaction) IsVisibleTo(u user.User) bool {
	if u.IsPrivileged() {
		return true
	}
	if !u.IsTeamMember() {
		return false
	}
	if t.RecordedByID == u.ID {
		return true
	}
	for _, id := range t.InvolvedUserIDs {
		if id == u.ID {
			return true
		}
	}
	return false
}

// FilterVisible returns the transactions u may see, sorted by date descending.
// The ordering is part of the contract, not incidental.
func FilterVisible(transactions []Transaction, u user.User) []Transaction {
	visible := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.IsVisibleTo(u) {
			visible = append(visible, t)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Date.After(visible[j].Date)
	})
	return visible
}

// Totals sums incoming, expenses and the net balance over a transaction set.
func Totals(transactions []Transaction) (incoming, expenses, net float64) {
	for _, t := range transactions {
		if t.Type == TypeIncoming {
			incoming += t.Amount
		} else {
			expenses += t.Amount
		}
	}
	return incoming, expenses, incoming - expenses
}
