package application

import (
	"context"
	"net/http"
	"net/url"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/transport"
)

const basePath = "/api/jobapplications"

// applicationRepository implements domain.JobApplicationRepository over the backend API.
type applicationRepository struct {
	client *transport.Client
}

// NewJobApplicationRepository creates a new JobApplicationRepository backed by the given transport client.
func NewJobApplicationRepository(client *transport.Client) domain.JobApplicationRepository {
	return &applicationRepository{client: client}
}

// List fetches one page of applications. The status filter is sent as its ordinal.
func (r *applicationRepository) List(ctx context.Context, q domain.JobApplicationQuery) (domain.Result[domain.PagedResult[domain.JobApplication]], error) {
	var out domain.Result[domain.PagedResult[domain.JobApplication]]
	err := r.client.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   basePath,
		Query:  q.Values(),
	}, &out)
	return out, err
}

// GetByID fetches a single application.
func (r *applicationRepository) GetByID(ctx context.Context, id string) (domain.Result[domain.JobApplication], error) {
	var out domain.Result[domain.JobApplication]
	err := r.client.Do(ctx, transport.Request{Method: http.MethodGet, Path: itemPath(id)}, &out)
	return out, err
}

// Create posts a new application.
func (r *applicationRepository) Create(ctx context.Context, in domain.JobApplicationInput) (domain.Result[domain.JobApplication], error) {
	var out domain.Result[domain.JobApplication]
	err := r.client.Do(ctx, transport.Request{Method: http.MethodPost, Path: basePath, Body: in}, &out)
	return out, err
}

// Update replaces an existing application.
func (r *applicationRepository) Update(ctx context.Context, id string, in domain.JobApplicationInput) (domain.Result[domain.JobApplication], error) {
	var out domain.Result[domain.JobApplication]
	err := r.client.Do(ctx, transport.Request{Method: http.MethodPut, Path: itemPath(id), Body: in}, &out)
	return out, err
}

// Delete removes an application.
func (r *applicationRepository) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	var out domain.Result[domain.Empty]
	err := r.client.Do(ctx, transport.Request{Method: http.MethodDelete, Path: itemPath(id)}, &out)
	return out, err
}

func itemPath(id string) string {
	return basePath + "/" + url.PathEscape(id)
}
