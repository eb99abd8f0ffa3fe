package company

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/pkg"
)

// CompanyHandler serves the company views.
type CompanyHandler struct {
	svc domain.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with the given service.
func NewCompanyHandler(svc domain.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// List handles GET /views/companies.
func (h *CompanyHandler) List(c *gin.Context) {
	q := domain.CompanyQuery{
		Search:   c.Query("search"),
		City:     c.Query("city"),
		Country:  c.Query("country"),
		Industry: c.Query("industry"),
	}
	q.PageNumber, q.PageSize = pkg.ParsePage(c)

	page, err := h.svc.ListCompanies(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, page)
}

// Options handles GET /views/companies/options.
func (h *CompanyHandler) Options(c *gin.Context) {
	companies, err := h.svc.CompanyOptions(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, companies)
}

// Get handles GET /views/companies/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.svc.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, company)
}

// Create handles POST /views/companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	var in domain.CompanyInput
	if !pkg.BindAndValidate(c, &in) {
		return
	}

	company, err := h.svc.CreateCompany(c.Request.Context(), in)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, company)
}

// Update handles PUT /views/companies/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
	var in domain.CompanyInput
	if !pkg.BindAndValidate(c, &in) {
		return
	}

	company, err := h.svc.UpdateCompany(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, company)
}

// Delete handles DELETE /views/companies/:id. The caller must pass
// confirm=true.
func (h *CompanyHandler) Delete(c *gin.Context) {
	if !pkg.ParseConfirm(c) {
		pkg.Error(c, pkg.ErrUnconfirmed)
		return
	}

	if err := h.svc.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
