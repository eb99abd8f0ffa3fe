package dashboard

import (
	"context"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/query"
)

const msgOverviewFailed = "Failed to load dashboard."

// dashboardService implements domain.DashboardService.
type dashboardService struct {
	repo  domain.DashboardRepository
	store *query.Store
}

// NewDashboardService creates a new DashboardService reading through store.
func NewDashboardService(repo domain.DashboardRepository, store *query.Store) domain.DashboardService {
	return &dashboardService{repo: repo, store: store}
}

// Overview returns the dashboard aggregate. Application and company writes
// invalidate it.
func (s *dashboardService) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	key := query.NewKey(query.KindDashboard, nil)
	o, err := query.Fetch(ctx, s.store, key, func(ctx context.Context) (*domain.DashboardOverview, error) {
		res, err := s.repo.Overview(ctx)
		if err != nil {
			return nil, err
		}
		o, err := domain.Unwrap(res, msgOverviewFailed)
		if err != nil {
			return nil, err
		}
		return &o, nil
	})
	if err != nil {
		return nil, err
	}
	return o.Clone(), nil
}
