package invoice

import "errors"

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
)
