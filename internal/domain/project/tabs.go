package project

import "github.com/constructor-app/constructor-backend-go/internal/domain/user"

const (
	TabOverview        = "overview"
	TabProgressReports = "progress-reports"
	TabSchedule        = "schedule"
	TabTasks           = "tasks"
	TabBudget          = "budget"
	TabTransactions    = "transactions"
	TabInventory       = "inventory"
	TabDocuments       = "documents"
	TabInvoices        = "invoices"
	TabTeam            = "team"
	TabNotepad         = "notepad"
	TabReports         = "reports"
)

type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AllProjectTabs is the static tab catalogue, in display order. Icons are a
// frontend concern and are not carried here.
var AllProjectTabs = []Tab{
	{ID: TabOverview, Label: "Overview"},
	{ID: TabProgressReports, Label: "Progress Reports"},
	{ID: TabSchedule, Label: "Schedule"},
	{ID: TabTasks, Label: "Tasks"},
	{ID: TabBudget, Label: "Budget"},
	{ID: TabTransactions, Label: "Transactions"},
	{ID: TabInventory, Label: "Inventory"},
	{ID: TabDocuments, Label: "Documents"},
	{ID: TabInvoices, Label: "Invoices"},
	{ID: TabTeam, Label: "Team"},
	{ID: TabNotepad, Label: "Notepad"},
	{ID: TabReports, Label: "Analytics"},
}

// AllTabIDs returns the catalogue ids in display order.
func AllTabIDs() []string {
	ids := make([]string, 0, len(AllProjectTabs))
	for _, t := range AllProjectTabs {
		ids = append(ids, t.ID)
	}
	return ids
}

// IsKnownTab reports whether id belongs to the catalogue.
func IsKnownTab(id string) bool {
	for _, t := range AllProjectTabs {
		if t.ID == id {
			return true
		}
	}
	return false
}

// DefaultVisibleTabs returns the tabs a role sees when no per-project override
// exists. Clients don't see internal budget details, transactions or task
// management; team members don't see the high-level budget.
func DefaultVisibleTabs(role user.Role) []string {
	var hidden []string
	switch {
	case role.IsClient():
		hidden = []string{TabBudget, TabTransactions, TabTasks}
	case role.IsTeamMember():
		hidden = []string{TabBudget}
	default:
		return AllTabIDs()
	}

	ids := make([]string, 0, len(AllProjectTabs))
	for _, t := range AllProjectTabs {
		if !containsString(hidden, t.ID) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// EffectiveVisibleTabs resolves the tabs userID may see on this project. An
// explicit override wins verbatim, even when empty: an administrator may
// deliberately hide every tab for a member. Only an absent entry falls back
// to the role default.
func (p *Project) EffectiveVisibleTabs(userID string, role user.Role) []string {
	if p.MemberPermissions != nil {
		if allowed, ok := p.MemberPermissions[userID]; ok {
			out := make([]string, len(allowed))
			copy(out, allowed)
			return out
		}
	}
	return DefaultVisibleTabs(role)
}

// ResolveActiveTab re-selects the active tab after the effective set changes.
// The current tab survives if still visible; otherwise overview is preferred,
// then the first visible tab. An empty string means nothing is visible.
func ResolveActiveTab(visible []string, current string) string {
	if containsString(visible, current) {
		return current
	}
	if containsString(visible, TabOverview) {
		return TabOverview
	}
	if len(visible) > 0 {
		return visible[0]
	}
	return ""
}

func containsString(slice []string, value string) bool {
	for _, s := range slice {
		if s == value {
			return true
		}
	}
	return false
}
