// Package fakeapi is an in-memory implementation of the job-tracker backend
// API. It speaks the same envelope and paging contract as the real service and
// backs the package tests as well as the CLI's fake-backend command.
package fakeapi

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/simp-lee/jobtracker/internal/domain"
)

// Route names accepted by Calls and Fail.
const (
	RouteListCompanies     = "GET /api/companies"
	RouteGetCompany        = "GET /api/companies/:id"
	RouteCreateCompany     = "POST /api/companies"
	RouteUpdateCompany     = "PUT /api/companies/:id"
	RouteDeleteCompany     = "DELETE /api/companies/:id"
	RouteListApplications  = "GET /api/jobapplications"
	RouteGetApplication    = "GET /api/jobapplications/:id"
	RouteCreateApplication = "POST /api/jobapplications"
	RouteUpdateApplication = "PUT /api/jobapplications/:id"
	RouteDeleteApplication = "DELETE /api/jobapplications/:id"
	RouteOverview          = "GET /api/dashboard/overview"
)

const (
	defaultPageSize = 10
	recentLimit     = 5
	topLimit        = 5
)

type fault struct {
	status   int
	errors   []string
	envelope bool
}

// Server holds the backend state. The zero value is not usable; call New.
type Server struct {
	mu           sync.Mutex
	companies    []domain.Company
	applications []domain.JobApplication
	calls        map[string]int
	faults       map[string]fault
	now          func() time.Time
	engine       *gin.Engine
}

// New creates an empty backend.
func New() *Server {
	s := &Server{
		calls:  make(map[string]int),
		faults: make(map[string]fault),
		now:    time.Now,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Calls returns how many requests hit route, e.g. RouteListCompanies.
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// Fail makes every following request to route answer with a failed envelope
// carrying errs and the given status.
func (s *Server) Fail(route string, status int, errs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[route] = fault{status: status, errors: errs, envelope: true}
}

// Break makes every following request to route answer with a plain-text body
// and the given status, as a crashed proxy would.
func (s *Server) Break(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[route] = fault{status: status}
}

// Heal removes any fault installed on route.
func (s *Server) Heal(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.faults, route)
}

// SeedCompany stores c, assigning an id when it has none.
func (s *Server) SeedCompany(c domain.Company) domain.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.companies = append(s.companies, c)
	return c
}

// SeedApplication stores a, assigning an id and filling the server-owned fields.
func (s *Server) SeedApplication(a domain.JobApplication) domain.JobApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if c, ok := s.company(a.CompanyID); ok {
		a.CompanyName = c.Name
	}
	if a.LastUpdated == "" {
		a.LastUpdated = s.now().UTC().Format(time.RFC3339Nano)
	}
	s.applications = append(s.applications, a)
	return a
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.UseRawPath = true
	r.Use(gin.Recovery(), s.track)

	api := r.Group("/api")
	api.GET("/companies", s.listCompanies)
	api.GET("/companies/:id", s.getCompany)
	api.POST("/companies", s.createCompany)
	api.PUT("/companies/:id", s.updateCompany)
	api.DELETE("/companies/:id", s.deleteCompany)

	api.GET("/jobapplications", s.listApplications)
	api.GET("/jobapplications/:id", s.getApplication)
	api.POST("/jobapplications", s.createApplication)
	api.PUT("/jobapplications/:id", s.updateApplication)
	api.DELETE("/jobapplications/:id", s.deleteApplication)

	api.GET("/dashboard/overview", s.overview)
	return r
}

// track counts the request and answers it with an installed fault, if any.
func (s *Server) track(c *gin.Context) {
	route := c.Request.Method + " " + c.FullPath()

	s.mu.Lock()
	s.calls[route]++
	f, broken := s.faults[route]
	s.mu.Unlock()

	if !broken {
		c.Next()
		return
	}
	if f.envelope {
		c.AbortWithStatusJSON(f.status, domain.Failed[domain.Empty](f.errors...))
		return
	}
	c.Data(f.status, "text/plain; charset=utf-8", []byte(http.StatusText(f.status)))
	c.Abort()
}

func ok[T any](c *gin.Context, status int, data T) {
	c.JSON(status, domain.OK(data))
}

func okEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Result[domain.Empty]{IsSuccess: true, Errors: []string{}})
}

func failed(c *gin.Context, status int, errs ...string) {
	c.JSON(status, domain.Failed[domain.Empty](errs...))
}

// page slices items according to the pageNumber and pageSize query
// parameters. Missing or invalid values fall back to page 1 of 10.
func page[T any](c *gin.Context, items []T) domain.PagedResult[T] {
	number := queryInt(c, "pageNumber", 1)
	size := queryInt(c, "pageSize", defaultPageSize)

	total := len(items)
	start := min((number-1)*size, total)
	end := min(start+size, total)
	return domain.NewPagedResult(slices.Clone(items[start:end]), total, number, size)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
