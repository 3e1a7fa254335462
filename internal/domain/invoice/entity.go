package invoice

import "time"

type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
	StatusOverdue Status = "Overdue"
)

var StatusValues = []string{
	string(StatusPaid),
	string(StatusPending),
	string(StatusOverdue),
}

type Invoice struct {
	ID            string
	ProjectID     string
	InvoiceNumber string
	ClientName    string
	Amount        float64
	Status        Status
	IssueDate     time.Time
	DueDate       time.Time
	RecipientID   string
}
