package note

import (
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

// Note is a private per-project scratchpad entry. Notes are only ever visible
// to their creator, regardless of role.
type Note struct {
	ID          string
	ProjectID   string
	Title       string
	Content     string
	LastUpdated time.Time
	CreatorID   string
}

// FilterVisible returns the notes created by u, order-preserving.
func FilterVisible(notes []Note, u user.User) []Note {
	visible := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.CreatorID == u.ID {
			visible = append(visible, n)
		}
	}
	return visible
}
