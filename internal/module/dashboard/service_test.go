package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/fakeapi"
	"github.com/simp-lee/jobtracker/internal/module/application"
	"github.com/simp-lee/jobtracker/internal/pkg"
	"github.com/simp-lee/jobtracker/internal/query"
	"github.com/simp-lee/jobtracker/internal/transport"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupBackend(t *testing.T) (*fakeapi.Server, *transport.Client) {
	t.Helper()
	backend := fakeapi.New()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	client, err := transport.New(srv.URL, transport.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("transport.New: %v", err)
	}
	return backend, client
}

func TestOverview_RefetchedAfterApplicationWrite(t *testing.T) {
	backend, client := setupBackend(t)
	acme := backend.SeedCompany(domain.Company{Name: "Acme"})
	store := query.NewStore()
	dash := NewDashboardService(NewDashboardRepository(client), store)
	apps := application.NewJobApplicationService(application.NewJobApplicationRepository(client), store)
	ctx := context.Background()

	o, err := dash.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if o.TotalApplications != 0 {
		t.Fatalf("overview = %+v", o)
	}
	if _, err := dash.Overview(ctx); err != nil {
		t.Fatal(err)
	}
	if got := backend.Calls(fakeapi.RouteOverview); got != 1 {
		t.Errorf("overview fetched %d times; want 1", got)
	}

	if _, err := apps.CreateApplication(ctx, domain.JobApplicationInput{
		CompanyID: acme.ID, PositionTitle: "Engineer", Status: domain.StatusInterview,
	}); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}

	o, err = dash.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if o.TotalApplications != 1 {
		t.Errorf("stale overview served: %+v", o)
	}
	if got := backend.Calls(fakeapi.RouteOverview); got != 2 {
		t.Errorf("overview fetched %d times; want 2", got)
	}
}

func TestOverview_Failures(t *testing.T) {
	backend, client := setupBackend(t)
	dash := NewDashboardService(NewDashboardRepository(client), query.NewStore())

	backend.Fail(fakeapi.RouteOverview, http.StatusInternalServerError)
	_, err := dash.Overview(context.Background())
	if !domain.IsDomainFailure(err) || domain.Messages(err)[0] != msgOverviewFailed {
		t.Errorf("failed envelope: %v", err)
	}

	backend.Break(fakeapi.RouteOverview, http.StatusBadGateway)
	_, err = dash.Overview(context.Background())
	if !domain.IsTransport(err) {
		t.Errorf("broken backend: %v", err)
	}

	backend.Heal(fakeapi.RouteOverview)
	if _, err := dash.Overview(context.Background()); err != nil {
		t.Errorf("errored entry should be refetched: %v", err)
	}
}

func TestDashboardHandler_Get(t *testing.T) {
	backend, client := setupBackend(t)
	acme := backend.SeedCompany(domain.Company{Name: "Acme"})
	backend.SeedApplication(domain.JobApplication{CompanyID: acme.ID, PositionTitle: "Engineer", Status: domain.StatusOffer})
	backend.SeedApplication(domain.JobApplication{CompanyID: acme.ID, PositionTitle: "Designer", Status: domain.StatusOffer})

	r := gin.New()
	svc := NewDashboardService(NewDashboardRepository(client), query.NewStore())
	NewModule(NewDashboardHandler(svc)).RegisterRoutes(r.Group("/views"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/views/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		pkg.Response
		Data View `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	v := resp.Data
	if v.AverageApplicationsPerCompany != "2.0" {
		t.Errorf("average = %q", v.AverageApplicationsPerCompany)
	}
	if len(v.StatusBuckets) != 6 || v.StatusBuckets[domain.StatusOffer].Count != 2 {
		t.Errorf("buckets = %+v", v.StatusBuckets)
	}
	if len(v.RecentApplications) != 2 {
		t.Errorf("recent = %+v", v.RecentApplications)
	}
}

func TestDashboardHandler_Error(t *testing.T) {
	backend, client := setupBackend(t)
	backend.Break(fakeapi.RouteOverview, http.StatusServiceUnavailable)

	r := gin.New()
	NewModule(NewDashboardHandler(NewDashboardService(NewDashboardRepository(client), query.NewStore()))).RegisterRoutes(r.Group("/views"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/views/dashboard", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
}
