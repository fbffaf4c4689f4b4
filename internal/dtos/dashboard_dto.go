package dtos

// MonthCount is one bucket of the applications-per-month series.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type DashboardSummary struct {
	TotalApplications int64            `json:"total_applications"`
	ByStatus          map[string]int64 `json:"by_status"`
	ByPriority        map[string]int64 `json:"by_priority"`
	PerMonth          []MonthCount     `json:"per_month"`
	OpenReminders     int64            `json:"open_reminders"`
}
