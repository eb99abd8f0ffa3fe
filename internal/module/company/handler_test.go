package company

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/pkg"
)

// --- mock service ---

type mockCompanyService struct {
	lastQuery  domain.CompanyQuery
	lastInput  domain.CompanyInput
	deletedIDs []string
	err        error
}

func (m *mockCompanyService) ListCompanies(_ context.Context, q domain.CompanyQuery) (*domain.PagedResult[domain.Company], error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	p := domain.NewPagedResult([]domain.Company{{ID: "c1", Name: "Acme"}}, 1, 1, 10)
	return &p, nil
}

func (m *mockCompanyService) GetCompany(_ context.Context, id string) (*domain.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Company{ID: id, Name: "Acme"}, nil
}

func (m *mockCompanyService) CompanyOptions(_ context.Context) ([]domain.Company, error) {
	return []domain.Company{{ID: "c1", Name: "Acme"}}, m.err
}

func (m *mockCompanyService) CreateCompany(_ context.Context, in domain.CompanyInput) (*domain.Company, error) {
	m.lastInput = in
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Company{ID: "new", Name: in.Name}, nil
}

func (m *mockCompanyService) UpdateCompany(_ context.Context, id string, in domain.CompanyInput) (*domain.Company, error) {
	m.lastInput = in
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Company{ID: id, Name: in.Name}, nil
}

func (m *mockCompanyService) DeleteCompany(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

// setupViewRouter creates a gin engine with the company views mounted.
func setupViewRouter(svc domain.CompanyService) *gin.Engine {
	r := gin.New()
	NewModule(NewCompanyHandler(svc)).RegisterRoutes(r.Group("/views"))
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) pkg.Response {
	t.Helper()
	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestCompanyHandler_List(t *testing.T) {
	svc := &mockCompanyService{}
	r := setupViewRouter(svc)

	w := serve(r, http.MethodGet, "/views/companies?search=ac&city=Oslo&pageNumber=2&pageSize=500", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if resp := decodeView(t, w); !resp.IsSuccess {
		t.Errorf("expected success envelope, got %+v", resp)
	}
	want := domain.CompanyQuery{Search: "ac", City: "Oslo", PageNumber: 2, PageSize: pkg.MaxPageSize}
	if svc.lastQuery != want {
		t.Errorf("query = %+v; want %+v", svc.lastQuery, want)
	}
}

func TestCompanyHandler_Options(t *testing.T) {
	w := serve(setupViewRouter(&mockCompanyService{}), http.MethodGet, "/views/companies/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	data, _ := json.Marshal(decodeView(t, w).Data)
	if !strings.Contains(string(data), `"Acme"`) {
		t.Errorf("unexpected data %s", data)
	}
}

func TestCompanyHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantField  string
	}{
		{name: "created", body: `{"name":"Acme"}`, wantStatus: http.StatusCreated},
		{name: "missing name", body: `{"city":"Oslo"}`, wantStatus: http.StatusBadRequest, wantField: "name"},
		{name: "bad website", body: `{"name":"Acme","websiteUrl":"nope"}`, wantStatus: http.StatusBadRequest, wantField: "websiteUrl"},
		{
			name:       "server rejection",
			body:       `{"name":"Acme"}`,
			svcErr:     domain.NewDomainError([]string{"A company with this name already exists"}, "x"),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCompanyService{err: tt.svcErr}
			w := serve(setupViewRouter(svc), http.MethodPost, "/views/companies", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			resp := decodeView(t, w)
			if tt.wantField != "" {
				if _, ok := resp.Fields[tt.wantField]; !ok {
					t.Errorf("expected field error for %s, got %v", tt.wantField, resp.Fields)
				}
			}
			if tt.svcErr != nil && (len(resp.Errors) != 1 || resp.Errors[0] != "A company with this name already exists") {
				t.Errorf("errors = %v", resp.Errors)
			}
		})
	}
}

func TestCompanyHandler_Update(t *testing.T) {
	svc := &mockCompanyService{}
	w := serve(setupViewRouter(svc), http.MethodPut, "/views/companies/c1", `{"name":" Acme AS "}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if svc.lastInput.Name != " Acme AS " {
		t.Errorf("handler should pass input through, got %q", svc.lastInput.Name)
	}
}

func TestCompanyHandler_Get_NotFound(t *testing.T) {
	svc := &mockCompanyService{err: domain.NewTransportError("server returned 404 Not Found", http.StatusNotFound, nil)}
	w := serve(setupViewRouter(svc), http.MethodGet, "/views/companies/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCompanyHandler_Delete_RequiresConfirmation(t *testing.T) {
	svc := &mockCompanyService{}
	r := setupViewRouter(svc)

	w := serve(r, http.MethodDelete, "/views/companies/c1", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without confirm, got %d", w.Code)
	}
	if len(svc.deletedIDs) != 0 {
		t.Fatal("service must not be called without confirmation")
	}

	w = serve(r, http.MethodDelete, "/views/companies/c1?confirm=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if len(svc.deletedIDs) != 1 || svc.deletedIDs[0] != "c1" {
		t.Errorf("deleted = %v", svc.deletedIDs)
	}
}
