package fakeapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/simp-lee/jobtracker/internal/domain"
)

func (s *Server) listCompanies(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	city := strings.TrimSpace(c.Query("city"))
	country := strings.TrimSpace(c.Query("country"))
	industry := strings.TrimSpace(c.Query("industry"))

	s.mu.Lock()
	var matched []domain.Company
	for _, co := range s.companies {
		if search != "" && !containsFold(co.Name, search) {
			continue
		}
		if city != "" && !strings.EqualFold(co.City, city) {
			continue
		}
		if country != "" && !strings.EqualFold(co.Country, country) {
			continue
		}
		if industry != "" && !strings.EqualFold(co.Industry, industry) {
			continue
		}
		matched = append(matched, co)
	}
	s.mu.Unlock()

	ok(c, http.StatusOK, page(c, matched))
}

func (s *Server) getCompany(c *gin.Context) {
	s.mu.Lock()
	co, found := s.company(c.Param("id"))
	s.mu.Unlock()

	if !found {
		failed(c, http.StatusNotFound, "Company not found")
		return
	}
	ok(c, http.StatusOK, co)
}

func (s *Server) createCompany(c *gin.Context) {
	var in domain.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		failed(c, http.StatusBadRequest, "Invalid company: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(in.Name, "") {
		failed(c, http.StatusBadRequest, "A company with this name already exists")
		return
	}
	co := companyFromInput(uuid.NewString(), in)
	s.companies = append(s.companies, co)
	ok(c, http.StatusCreated, co)
}

func (s *Server) updateCompany(c *gin.Context) {
	var in domain.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		failed(c, http.StatusBadRequest, "Invalid company: "+err.Error())
		return
	}
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.companyIndex(id)
	if i < 0 {
		failed(c, http.StatusNotFound, "Company not found")
		return
	}
	if s.nameTaken(in.Name, id) {
		failed(c, http.StatusBadRequest, "A company with this name already exists")
		return
	}
	co := companyFromInput(id, in)
	s.companies[i] = co
	for j := range s.applications {
		if s.applications[j].CompanyID == id {
			s.applications[j].CompanyName = co.Name
		}
	}
	ok(c, http.StatusOK, co)
}

func (s *Server) deleteCompany(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.companyIndex(id)
	if i < 0 {
		failed(c, http.StatusNotFound, "Company not found")
		return
	}
	for _, a := range s.applications {
		if a.CompanyID == id {
			failed(c, http.StatusBadRequest, "Company has job applications and cannot be deleted")
			return
		}
	}
	s.companies = append(s.companies[:i], s.companies[i+1:]...)
	okEmpty(c)
}

// company, companyIndex and nameTaken require s.mu.
func (s *Server) company(id string) (domain.Company, bool) {
	if i := s.companyIndex(id); i >= 0 {
		return s.companies[i], true
	}
	return domain.Company{}, false
}

func (s *Server) companyIndex(id string) int {
	for i, co := range s.companies {
		if co.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) nameTaken(name, exceptID string) bool {
	for _, co := range s.companies {
		if co.ID != exceptID && strings.EqualFold(co.Name, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

func companyFromInput(id string, in domain.CompanyInput) domain.Company {
	in.Normalize()
	return domain.Company{
		ID:         id,
		Name:       in.Name,
		OrgNumber:  in.OrgNumber,
		City:       in.City,
		Country:    in.Country,
		Industry:   in.Industry,
		WebsiteURL: in.WebsiteURL,
		Notes:      in.Notes,
	}
}
