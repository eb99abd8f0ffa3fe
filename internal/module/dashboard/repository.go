package dashboard

import (
	"context"
	"net/http"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/transport"
)

const overviewPath = "/api/dashboard/overview"

// dashboardRepository implements domain.DashboardRepository over the backend API.
type dashboardRepository struct {
	client *transport.Client
}

// NewDashboardRepository creates a new DashboardRepository backed by the given transport client.
func NewDashboardRepository(client *transport.Client) domain.DashboardRepository {
	return &dashboardRepository{client: client}
}

// Overview fetches the dashboard aggregate.
func (r *dashboardRepository) Overview(ctx context.Context) (domain.Result[domain.DashboardOverview], error) {
	var out domain.Result[domain.DashboardOverview]
	err := r.client.Do(ctx, transport.Request{Method: http.MethodGet, Path: overviewPath}, &out)
	return out, err
}
