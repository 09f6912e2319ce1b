package admin

import (
	"context"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/notify"
)

// DashboardService loads the aggregate view and checks API health.
type DashboardService struct {
	client Client
	bus    *notify.Bus
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(client Client, bus *notify.Bus) *DashboardService {
	return &DashboardService{client: client, bus: bus}
}

// Stats returns today's counts and recent attendance.
func (s *DashboardService) Stats(ctx context.Context) (hrms.DashboardStats, error) {
	stats, err := s.client.DashboardStats(ctx)
	if err != nil {
		return hrms.DashboardStats{}, report(s.bus, err)
	}
	return stats, nil
}

// Health pings the API. Failures are returned without publishing so callers
// can poll quietly.
func (s *DashboardService) Health(ctx context.Context) (hrms.Health, error) {
	return s.client.Health(ctx)
}
