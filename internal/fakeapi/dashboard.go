package fakeapi

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/jobtracker/internal/domain"
)

// overview mirrors the backend aggregate: statuses with no applications are
// left out of applicationsByStatus.
func (s *Server) overview(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[domain.ApplicationStatus]int)
	perCompany := make(map[string]int)
	for _, a := range s.applications {
		counts[a.Status]++
		perCompany[a.CompanyID]++
	}

	byStatus := []domain.StatusCount{}
	for _, st := range domain.AllStatuses() {
		if n := counts[st]; n > 0 {
			byStatus = append(byStatus, domain.StatusCount{Status: st, Count: n})
		}
	}

	recent := slices.Clone(s.applications)
	slices.SortStableFunc(recent, func(a, b domain.JobApplication) int {
		return cmp.Compare(b.LastUpdated, a.LastUpdated)
	})
	recent = recent[:min(recentLimit, len(recent))]
	if recent == nil {
		recent = []domain.JobApplication{}
	}

	top := []domain.CompanyApplicationsSummary{}
	for _, co := range s.companies {
		if n := perCompany[co.ID]; n > 0 {
			top = append(top, domain.CompanyApplicationsSummary{
				CompanyID:         co.ID,
				CompanyName:       co.Name,
				ApplicationsCount: n,
			})
		}
	}
	slices.SortStableFunc(top, func(a, b domain.CompanyApplicationsSummary) int {
		return cmp.Compare(b.ApplicationsCount, a.ApplicationsCount)
	})
	top = top[:min(topLimit, len(top))]

	ok(c, http.StatusOK, domain.DashboardOverview{
		TotalCompanies:             len(s.companies),
		TotalApplications:          len(s.applications),
		ApplicationsByStatus:       byStatus,
		RecentApplications:         recent,
		TopCompaniesByApplications: top,
	})
}
