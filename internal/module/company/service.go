package company

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/pkg"
	"github.com/simp-lee/jobtracker/internal/query"
)

// OptionsPageSize is how many companies a picker offers.
const OptionsPageSize = 100

// Fallback messages used when the backend rejects a call without saying why.
const (
	msgListFailed   = "Failed to load companies"
	msgGetFailed    = "Failed to load company"
	msgCreateFailed = "Failed to create company"
	msgUpdateFailed = "Failed to update company"
	msgDeleteFailed = "Failed to delete company"
)

// mutationKinds are the cache kinds a successful company write invalidates.
// Applications carry the company name and the dashboard counts companies.
var mutationKinds = []query.Kind{
	query.KindCompanies,
	query.KindCompany,
	query.KindCompanyOptions,
	query.KindJobApplications,
	query.KindJobApplication,
	query.KindDashboard,
}

// companyService implements domain.CompanyService.
type companyService struct {
	repo  domain.CompanyRepository
	store *query.Store
}

// NewCompanyService creates a new CompanyService reading through store.
func NewCompanyService(repo domain.CompanyRepository, store *query.Store) domain.CompanyService {
	return &companyService{repo: repo, store: store}
}

// ListCompanies returns one page of companies. The page is a copy; changing
// it does not touch the cache.
func (s *companyService) ListCompanies(ctx context.Context, q domain.CompanyQuery) (*domain.PagedResult[domain.Company], error) {
	key := query.NewKey(query.KindCompanies, q.Values())
	page, err := query.Fetch(ctx, s.store, key, func(ctx context.Context) (*domain.PagedResult[domain.Company], error) {
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
	return page.Clone(), nil
}

// GetCompany returns a single company. An empty id is rejected without a
// backend call.
func (s *companyService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	id = strings.TrimSpace(id)
	c, err := query.Fetch(ctx, s.store, query.IDKey(query.KindCompany, id), func(ctx context.Context) (*domain.Company, error) {
		res, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		c, err := domain.Unwrap(res, msgGetFailed)
		if err != nil {
			return nil, err
		}
		return &c, nil
	}, query.Enabled(id != ""))
	if errors.Is(err, query.ErrDisabled) {
		return nil, missingID(err)
	}
	if err != nil {
		return nil, err
	}
	cp := *c
	return &cp, nil
}

// CompanyOptions returns the first OptionsPageSize companies for pickers.
func (s *companyService) CompanyOptions(ctx context.Context) ([]domain.Company, error) {
	q := domain.CompanyQuery{PageNumber: 1, PageSize: OptionsPageSize}
	key := query.NewKey(query.KindCompanyOptions, q.Values())
	items, err := query.Fetch(ctx, s.store, key, func(ctx context.Context) ([]domain.Company, error) {
		res, err := s.repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
		page, err := domain.Unwrap(res, msgListFailed)
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

// CreateCompany validates in, creates the company and invalidates dependent reads.
func (s *companyService) CreateCompany(ctx context.Context, in domain.CompanyInput) (*domain.Company, error) {
	in.Normalize()
	if err := pkg.Validate(in); err != nil {
		return nil, err
	}

	res, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	c, err := domain.Unwrap(res, msgCreateFailed)
	if err != nil {
		return nil, err
	}

	s.store.Invalidate(mutationKinds...)
	return &c, nil
}

// UpdateCompany validates in, replaces the company and invalidates dependent reads.
func (s *companyService) UpdateCompany(ctx context.Context, id string, in domain.CompanyInput) (*domain.Company, error) {
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
	c, err := domain.Unwrap(res, msgUpdateFailed)
	if err != nil {
		return nil, err
	}

	s.store.Invalidate(mutationKinds...)
	return &c, nil
}

// DeleteCompany removes the company and invalidates dependent reads. Callers
// confirm with the user before calling it.
func (s *companyService) DeleteCompany(ctx context.Context, id string) error {
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
	return domain.NewAppError(domain.CodeValidation, "Missing company id", err)
}
