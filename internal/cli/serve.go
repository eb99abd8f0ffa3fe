package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/simp-lee/jobtracker/internal/app"
	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/fakeapi"
)

// runServe starts the view server; it blocks until SIGINT or SIGTERM.
func runServe(_ context.Context, r *Runner, args []string) error {
	fs := newFlagSet(r, "serve")
	host := fs.String("host", r.cfg.Server.Host, "listen host")
	port := fs.Int("port", r.cfg.Server.Port, "listen port")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	r.cfg.Server.Host = *host
	r.cfg.Server.Port = *port
	if err := r.cfg.Validate(); err != nil {
		return usagef("serve: %v", err)
	}

	a, err := app.New(r.cfg)
	if err != nil {
		return err
	}
	return a.Run()
}

// listenAndServe is a test seam for running the fake backend.
var listenAndServe = func(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runFakeBackend serves an in-memory backend, for trying the client without
// the real service.
func runFakeBackend(ctx context.Context, r *Runner, args []string) error {
	fs := newFlagSet(r, "fake-backend")
	addr := fs.String("addr", "127.0.0.1:7030", "listen address")
	seed := fs.Bool("seed", false, "load demo companies and applications")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	backend := fakeapi.New()
	if *seed {
		seedDemo(backend)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           backend.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	fmt.Fprintf(r.io.Err, "fake backend listening on http://%s\n", *addr)
	return listenAndServe(ctx, srv)
}

func seedDemo(backend *fakeapi.Server) {
	priority := func(n int) *int { return &n }

	acme := backend.SeedCompany(domain.Company{Name: "Acme", City: "Oslo", Country: "Norway", Industry: "Manufacturing", WebsiteURL: "https://acme.example.com"})
	globex := backend.SeedCompany(domain.Company{Name: "Globex", City: "Stockholm", Country: "Sweden", Industry: "Software"})
	backend.SeedCompany(domain.Company{Name: "Initech", City: "Copenhagen", Country: "Denmark", Industry: "Consulting"})

	backend.SeedApplication(domain.JobApplication{CompanyID: acme.ID, PositionTitle: "Backend Engineer", Status: domain.StatusInterview, AppliedDate: "2026-09-01T00:00:00Z", Source: "LinkedIn", Priority: priority(1)})
	backend.SeedApplication(domain.JobApplication{CompanyID: acme.ID, PositionTitle: "Platform Engineer", Status: domain.StatusApplied, AppliedDate: "2026-09-14T00:00:00Z", Priority: priority(3)})
	backend.SeedApplication(domain.JobApplication{CompanyID: globex.ID, PositionTitle: "Go Developer", Status: domain.StatusPlanned, Source: "Referral"})
	backend.SeedApplication(domain.JobApplication{CompanyID: globex.ID, PositionTitle: "SRE", Status: domain.StatusRejected, AppliedDate: "2026-08-20T00:00:00Z"})
}
