package dto

// DashboardStats are derived counts, recomputed on every request.
type DashboardStats struct {
	TotalCustomers       int64 `json:"totalCustomers"`
	TotalHeaters         int64 `json:"totalHeaters"`
	OverdueMaintenances  int64 `json:"overdueMaintenances"`
	UpcomingMaintenances int64 `json:"upcomingMaintenances"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
