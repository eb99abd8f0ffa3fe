package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/simp-lee/jobtracker/internal/config"
	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/module/application"
	"github.com/simp-lee/jobtracker/internal/module/company"
	"github.com/simp-lee/jobtracker/internal/module/dashboard"
	"github.com/simp-lee/jobtracker/internal/query"
	"github.com/simp-lee/jobtracker/internal/transport"
)

// Services bundles the resource services of one process. They share a single
// transport client and a single query store, so a write through one service
// invalidates reads cached by the others.
type Services struct {
	Backend      *transport.Client
	Store        *query.Store
	Companies    domain.CompanyService
	Applications domain.JobApplicationService
	Dashboard    domain.DashboardService
}

// NewServices wires repositories and services for cfg.API.
func NewServices(cfg *config.Config, log *slog.Logger) (*Services, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if log == nil {
		log = slog.Default()
	}

	client, err := transport.New(cfg.API.BaseURL,
		transport.WithLogger(log),
		transport.WithTimeout(cfg.APITimeout()),
	)
	if err != nil {
		return nil, fmt.Errorf("setup api client: %w", err)
	}
	store := query.NewStore(query.WithLogger(log))

	return &Services{
		Backend:      client,
		Store:        store,
		Companies:    company.NewCompanyService(company.NewCompanyRepository(client), store),
		Applications: application.NewJobApplicationService(application.NewJobApplicationRepository(client), store),
		Dashboard:    dashboard.NewDashboardService(dashboard.NewDashboardRepository(client), store),
	}, nil
}

// Modules returns the view modules backed by s.
func (s *Services) Modules() []Module {
	return []Module{
		dashboard.NewModule(dashboard.NewDashboardHandler(s.Dashboard)),
		company.NewModule(company.NewCompanyHandler(s.Companies)),
		application.NewModule(application.NewJobApplicationHandler(s.Applications)),
	}
}
