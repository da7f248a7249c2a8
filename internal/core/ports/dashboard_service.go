package ports

import "context"

// DashboardStats aggregates headline counts for the dashboard.
type DashboardStats struct {
	TotalMembers  int64   `json:"total_members"`
	ActiveMembers int64   `json:"active_members"`
	TotalCoaches  int64   `json:"total_coaches"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// DashboardService computes aggregate statistics.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
