package dashboard

import (
	"fmt"

	"github.com/simp-lee/jobtracker/internal/domain"
)

// StatusBucket is one row of the status breakdown.
type StatusBucket struct {
	Status domain.ApplicationStatus `json:"status"`
	Label  string                   `json:"label"`
	Count  int                      `json:"count"`
}

// View is the dashboard as presented: the overview plus derived figures.
type View struct {
	TotalCompanies                int                                 `json:"totalCompanies"`
	TotalApplications             int                                 `json:"totalApplications"`
	AverageApplicationsPerCompany string                              `json:"averageApplicationsPerCompany"`
	StatusBuckets                 []StatusBucket                      `json:"statusBuckets"`
	RecentApplications            []domain.JobApplication             `json:"recentApplications"`
	TopCompanies                  []domain.CompanyApplicationsSummary `json:"topCompanies"`
}

// StatusBuckets expands counts into one bucket per known status, in ordinal
// order, with zero for statuses the backend left out. Counts for unknown
// statuses are dropped; repeated statuses are summed.
func StatusBuckets(counts []domain.StatusCount) []StatusBucket {
	all := domain.AllStatuses()
	buckets := make([]StatusBucket, len(all))
	for i, st := range all {
		buckets[i] = StatusBucket{Status: st, Label: st.String()}
	}
	for _, c := range counts {
		if c.Status.Valid() {
			buckets[c.Status].Count += c.Count
		}
	}
	return buckets
}

// AverageApplicationsPerCompany formats applications per company with one
// decimal, or "0.0" when there are no companies.
func AverageApplicationsPerCompany(o domain.DashboardOverview) string {
	if o.TotalCompanies <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(o.TotalApplications)/float64(o.TotalCompanies))
}

// BuildView derives the presented dashboard from o.
func BuildView(o domain.DashboardOverview) View {
	recent := o.RecentApplications
	if recent == nil {
		recent = []domain.JobApplication{}
	}
	top := o.TopCompaniesByApplications
	if top == nil {
		top = []domain.CompanyApplicationsSummary{}
	}
	return View{
		TotalCompanies:                o.TotalCompanies,
		TotalApplications:             o.TotalApplications,
		AverageApplicationsPerCompany: AverageApplicationsPerCompany(o),
		StatusBuckets:                 StatusBuckets(o.ApplicationsByStatus),
		RecentApplications:            recent,
		TopCompanies:                  top,
	}
}
