package material

import (
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// LowStockThreshold is the quantity below which a material counts as low stock.
const LowStockThreshold = 20

type UsageEntry struct {
	Date         time.Time
	QuantityUsed int
	Notes        string
}

type Material struct {
	ID            string
	ProjectID     string
	Name          string
	Quantity      int
	Unit          string
	Supplier      string
	Status        Status
	SupplyDate    time.Time
	InvoiceNumber string
	UsageHistory  []UsageEntry

	// VisibleTo lists the non-privileged users tagged on this item. Nil or
	// empty means privileged-only.
	VisibleTo []string
}

// StatusForQuantity derives the stock status from a quantity.
func StatusForQuantity(quantity int) Status {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// IsVisibleTo reports whether u may see this material. Privileged roles see
// everything; everyone else must be tagged in VisibleTo.
func (m *Material) IsVisibleTo(u user.User) bool {
	if u.IsPrivileged() {
		return true
	}
	for _, id := range m.VisibleTo {
		if id == u.ID {
			return true
		}
	}
	return false
}

// FilterVisible returns the order-preserving subset of materials u may see.
func FilterVisible(materials []Material, u user.User) []Material {
	if u.IsPrivileged() {
		return materials
	}
	visible := make([]Material, 0, len(materials))
	for _, m := range materials {
		if m.IsVisibleTo(u) {
			visible = append(visible, m)
		}
	}
	return visible
}
