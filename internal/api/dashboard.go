package api

import (
	"context"
	"net/http"

	"github.com/colonyops/hrms/internal/core/hrms"
)

// DashboardStats returns today's aggregate counts and recent attendance.
func (c *Client) DashboardStats(ctx context.Context) (hrms.DashboardStats, error) {
	var out hrms.DashboardStats
	err := c.Request(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out)
	return out, err
}

// Health checks that the API is reachable.
func (c *Client) Health(ctx context.Context) (hrms.Health, error) {
	var out hrms.Health
	err := c.Request(ctx, http.MethodGet, "/api/health", nil, &out)
	return out, err
}
