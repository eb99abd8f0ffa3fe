package company

import (
	"context"
	"net/http"
	"net/url"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/transport"
)

const basePath = "/api/companies"

// companyRepository implements domain.CompanyRepository over the backend API.
type companyRepository struct {
	client *transport.Client
}

// NewCompanyRepository creates a new CompanyRepository backed by the given transport client.
func NewCompanyRepository(client *transport.Client) domain.CompanyRepository {
	return &companyRepository{client: client}
}

// List fetches one page of companies. Unset filters are not sent.
func (r *companyRepository) List(ctx context.Context, q domain.CompanyQuery) (domain.Result[domain.PagedResult[domain.Company]], error) {
	var out domain.Result[domain.PagedResult[domain.Company]]
	err := r.client.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   basePath,
		Query:  q.Values(),
	}, &out)
	return out, err
}

// GetByID fetches a single company.
func (r *companyRepository) GetByID(ctx context.Context, id string) (domain.Result[domain.Company], error) {
	var out domain.Result[domain.Company]
	err := r.client.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   itemPath(id),
	}, &out)
	return out, err
}

// Create posts a new company.
func (r *companyRepository) Create(ctx context.Context, in domain.CompanyInput) (domain.Result[domain.Company], error) {
	var out domain.Result[domain.Company]
	err := r.client.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   basePath,
		Body:   in,
	}, &out)
	return out, err
}

// Update replaces an existing company.
func (r *companyRepository) Update(ctx context.Context, id string, in domain.CompanyInput) (domain.Result[domain.Company], error) {
	var out domain.Result[domain.Company]
	err := r.client.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   itemPath(id),
		Body:   in,
	}, &out)
	return out, err
}

// Delete removes a company.
func (r *companyRepository) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	var out domain.Result[domain.Empty]
	err := r.client.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   itemPath(id),
	}, &out)
	return out, err
}

func itemPath(id string) string {
	return basePath + "/" + url.PathEscape(id)
}
