package dashboard

// Summary numbers for the dashboard header cards.
type Summary struct {
	TotalClients     int64   `json:"total_clients"`
	ActiveProjects   int64   `json:"active_projects"`
	Outstanding      float64 `json:"outstanding"`
	CollectedMonth   float64 `json:"collected_this_month"`
	OverduePayments  int64   `json:"overdue_payments"`
	DueReminders     int64   `json:"due_reminders"`
	ProjectsPerState map[string]int64 `json:"projects_per_state"`
}

// RiskItem is one heuristic follow-up flag. Nothing here is persisted; the
// list is recomputed on every request.
type RiskItem struct {
	RiskType    string `json:"risk_type"` // "payment" | "ghosting"
	ProjectID   uint   `json:"project_id"`
	ProjectName string `json:"project_name"`
	ClientName  string `json:"client_name"`
	Metadata    string `json:"metadata"`
}
