package application

import (
	"context"
	"errors"
	"strings"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/pkg"
	"github.com/simp-lee/jobtracker/internal/query"
)

const (
	msgListFailed   = "Failed to load job applications."
	msgGetFailed    = "Failed to load this job application."
	msgCreateFailed = "Failed to create job application."
	msgUpdateFailed = "Failed to update job application."
	msgDeleteFailed = "Failed to delete job application."
)

// mutationKinds are the cache kinds a successful application write
// invalidates. The dashboard aggregates application data.
var mutationKinds = []query.Kind{
	query.KindJobApplications,
	query.KindJobApplication,
	query.KindDashboard,
}

// applicationService implements domain.JobApplicationService.
type applicationService struct {
	repo  domain.JobApplicationRepository
	store *query.Store
}

// NewJobApplicationService creates a new JobApplicationService reading through store.
func NewJobApplicationService(repo domain.JobApplicationRepository, store *query.Store) domain.JobApplicationService {
	return &applicationService{repo: repo, store: store}
}

// ListApplications returns one page of applications matching q.
func (s *applicationService) ListApplications(ctx context.Context, q domain.JobApplicationQuery) (*domain.PagedResult[domain.JobApplication], error) {
	key := query.NewKey(query.KindJobApplications, q.Values())
	page, err := query.Fetch(ctx, s.store, key, func(ctx context.Context) (*domain.PagedResult[domain.JobApplication], error) {
		res, err := s.repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
		page, err := domain.Unwrap(res, msgListFailed)
		if err != nil {
			return nil, err
		}
		return &page, nil
	})
	if err != nil {
		return nil, err
	}
	out := page.Clone()
	out.Items = domain.CloneApplications(page.Items)
	return out, nil
}

// GetApplication returns a single application. Whatever the cause, a failed
// read is reported to the user as msgGetFailed; the origin stays available
// through the error's code and Unwrap.
func (s *applicationService) GetApplication(ctx context.Context, id string) (*domain.JobApplication, error) {
	id = strings.TrimSpace(id)
	a, err := query.Fetch(ctx, s.store, query.IDKey(query.KindJobApplication, id), func(ctx context.Context) (*domain.JobApplication, error) {
		res, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		a, err := domain.Unwrap(res, msgGetFailed)
		if err != nil {
			return nil, err
		}
		return &a, nil
	}, query.Enabled(id != ""))
	switch {
	case err == nil:
		cp := a.Clone()
		return &cp, nil
	case errors.Is(err, query.ErrDisabled):
		return nil, missingID(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	default:
		return nil, domain.WithDisplayMessage(err, msgGetFailed)
	}
}

// CreateApplication validates in, creates the application and invalidates
// application and dashboard reads.
func (s *applicationService) CreateApplication(ctx context.Context, in domain.JobApplicationInput) (*domain.JobApplication, error) {
	in.Normalize()
	if err := pkg.Validate(in); err != nil {
		return nil, err
	}

	res, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	a, err := domain.Unwrap(res, msgCreateFailed)
	if err != nil {
		return nil, err
	}

	s.store.Invalidate(mutationKinds...)
	return &a, nil
}

// UpdateApplication validates in, replaces the application and invalidates
// application and dashboard reads.
func (s *applicationService) UpdateApplication(ctx context.Context, id string, in domain.JobApplicationInput) (*domain.JobApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, missingID(nil)
	}
	in.Normalize()
	if err := pkg.Validate(in); err != nil {
		return nil, err
	}

	res, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	a, err := domain.Unwrap(res, msgUpdateFailed)
	if err != nil {
		return nil, err
	}

	s.store.Invalidate(mutationKinds...)
	return &a, nil
}

// DeleteApplication removes the application and invalidates application and
// dashboard reads. Callers confirm with the user before calling it.
func (s *applicationService) DeleteApplication(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return missingID(nil)
	}

	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.UnwrapEmpty(res, msgDeleteFailed); err != nil {
		return err
	}

	s.store.Invalidate(mutationKinds...)
	return nil
}

func missingID(err error) error {
	return domain.NewAppError(domain.CodeValidation, "Missing job application id", err)
}
