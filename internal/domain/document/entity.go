package document

import "time"

type Type string

const (
	TypeBlueprint Type = "Blueprint"
	TypeContract  Type = "Contract"
	TypeInvoice   Type = "Invoice"
	TypeReport    Type = "Report"
)

var TypeValues = []string{
	string(TypeBlueprint),
	string(TypeContract),
	string(TypeInvoice),
	string(TypeReport),
}

type Document struct {
	ID         string
	ProjectID  string
	Name       string
	Type       Type
	Version    string
	UploadDate time.Time
	URL        string
}
