package dashboard

// DashboardResponse aggregates the landing-page figures for the acting user.
// Every count is derived from the same access gate the project list uses, so
// the numbers can never drift apart.
type DashboardResponse struct {
	Projects  ProjectSummaryResponse   `json:"projects"`
	Tasks     TaskSummaryResponse      `json:"tasks"`
	Inventory InventorySummaryResponse `json:"inventory"`
}

type ProjectSummaryResponse struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type TaskSummaryResponse struct {
	Due int `json:"due"`
}

type InventorySummaryResponse struct {
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}
