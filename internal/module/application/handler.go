package application

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/pkg"
)

// JobApplicationHandler serves the job application views.
type JobApplicationHandler struct {
	svc domain.JobApplicationService
}

// NewJobApplicationHandler creates a new JobApplicationHandler with the given service.
func NewJobApplicationHandler(svc domain.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{svc: svc}
}

// List handles GET /views/applications.
func (h *JobApplicationHandler) List(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	page, err := h.svc.ListApplications(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, page)
}

// Get handles GET /views/applications/:id.
func (h *JobApplicationHandler) Get(c *gin.Context) {
	a, err := h.svc.GetApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, a)
}

// Create handles POST /views/applications.
func (h *JobApplicationHandler) Create(c *gin.Context) {
	var req applicationRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	a, err := h.svc.CreateApplication(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, a)
}

// Update handles PUT /views/applications/:id.
func (h *JobApplicationHandler) Update(c *gin.Context) {
	var req applicationRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	a, err := h.svc.UpdateApplication(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, a)
}

// Delete handles DELETE /views/applications/:id. The caller must pass
// confirm=true.
func (h *JobApplicationHandler) Delete(c *gin.Context) {
	if !pkg.ParseConfirm(c) {
		pkg.Error(c, pkg.ErrUnconfirmed)
		return
	}

	if err := h.svc.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// parseListQuery reads the list filters. status takes a label or an ordinal;
// fromDate and toDate take yyyy-MM-dd.
func parseListQuery(c *gin.Context) (domain.JobApplicationQuery, error) {
	q := domain.JobApplicationQuery{
		Search:    c.Query("search"),
		CompanyID: c.Query("companyId"),
	}
	q.PageNumber, q.PageSize = pkg.ParsePage(c)

	fields := make(map[string]string)
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, err := domain.ParseApplicationStatus(raw)
		if err != nil {
			fields["status"] = "oneof=" + strings.Join(statusLabels(), " ")
		} else {
			q.Status = &st
		}
	}
	var err error
	if q.FromDate, err = domain.FromDateInput(c.Query("fromDate")); err != nil {
		fields["fromDate"] = "datetime=" + domain.DateInputLayout
	}
	if q.ToDate, err = domain.FromDateInput(c.Query("toDate")); err != nil {
		fields["toDate"] = "datetime=" + domain.DateInputLayout
	}

	if len(fields) > 0 {
		return q, domain.NewValidationError(fields)
	}
	return q, nil
}

func statusLabels() []string {
	all := domain.AllStatuses()
	labels := make([]string, len(all))
	for i, st := range all {
		labels[i] = st.String()
	}
	return labels
}
