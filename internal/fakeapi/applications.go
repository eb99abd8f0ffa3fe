package fakeapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/simp-lee/jobtracker/internal/domain"
)

func (s *Server) listApplications(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	companyID := strings.TrimSpace(c.Query("companyId"))
	from := domain.ToDateInput(c.Query("fromDate"))
	to := domain.ToDateInput(c.Query("toDate"))

	status := -1
	if raw := c.Query("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !domain.ApplicationStatus(n).Valid() {
			failed(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		status = n
	}

	s.mu.Lock()
	var matched []domain.JobApplication
	for _, a := range s.applications {
		if search != "" && !containsFold(a.PositionTitle, search) && !containsFold(a.CompanyName, search) {
			continue
		}
		if status >= 0 && int(a.Status) != status {
			continue
		}
		if companyID != "" && a.CompanyID != companyID {
			continue
		}
		applied := domain.ToDateInput(a.AppliedDate)
		if from != "" && (applied == "" || applied < from) {
			continue
		}
		if to != "" && (applied == "" || applied > to) {
			continue
		}
		matched = append(matched, a)
	}
	s.mu.Unlock()

	ok(c, http.StatusOK, page(c, matched))
}

func (s *Server) getApplication(c *gin.Context) {
	s.mu.Lock()
	i := s.applicationIndex(c.Param("id"))
	var a domain.JobApplication
	if i >= 0 {
		a = s.applications[i]
	}
	s.mu.Unlock()

	if i < 0 {
		failed(c, http.StatusNotFound, "Job application not found")
		return
	}
	ok(c, http.StatusOK, a)
}

func (s *Server) createApplication(c *gin.Context) {
	var in domain.JobApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		failed(c, http.StatusBadRequest, "Invalid job application: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.applicationFromInput(uuid.NewString(), in)
	if err != "" {
		failed(c, http.StatusBadRequest, err)
		return
	}
	s.applications = append(s.applications, a)
	ok(c, http.StatusCreated, a)
}

func (s *Server) updateApplication(c *gin.Context) {
	var in domain.JobApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		failed(c, http.StatusBadRequest, "Invalid job application: "+err.Error())
		return
	}
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.applicationIndex(id)
	if i < 0 {
		failed(c, http.StatusNotFound, "Job application not found")
		return
	}
	a, err := s.applicationFromInput(id, in)
	if err != "" {
		failed(c, http.StatusBadRequest, err)
		return
	}
	s.applications[i] = a
	ok(c, http.StatusOK, a)
}

func (s *Server) deleteApplication(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.applicationIndex(c.Param("id"))
	if i < 0 {
		failed(c, http.StatusNotFound, "Job application not found")
		return
	}
	s.applications = append(s.applications[:i], s.applications[i+1:]...)
	okEmpty(c)
}

// applicationIndex and applicationFromInput require s.mu.
func (s *Server) applicationIndex(id string) int {
	for i, a := range s.applications {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// applicationFromInput returns the stored form of in, or the message the
// backend rejects it with.
func (s *Server) applicationFromInput(id string, in domain.JobApplicationInput) (domain.JobApplication, string) {
	in.Normalize()
	co, found := s.company(in.CompanyID)
	if !found {
		return domain.JobApplication{}, "Company not found"
	}
	return domain.JobApplication{
		ID:            id,
		CompanyID:     co.ID,
		CompanyName:   co.Name,
		PositionTitle: in.PositionTitle,
		Status:        in.Status,
		AppliedDate:   in.AppliedDate,
		LastUpdated:   s.now().UTC().Format(time.RFC3339Nano),
		ContactEmail:  in.ContactEmail,
		ContactPhone:  in.ContactPhone,
		Source:        in.Source,
		Priority:      in.Priority,
		Notes:         in.Notes,
	}, ""
}
