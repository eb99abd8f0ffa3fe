package domain

import (
	"context"
	"slices"
)

// StatusCount is the number of applications in one status.
type StatusCount struct {
	Status ApplicationStatus `json:"status"`
	Count  int               `json:"count"`
}

// CompanyApplicationsSummary ranks a company by its application count.
type CompanyApplicationsSummary struct {
	CompanyID         string `json:"companyId"`
	CompanyName       string `json:"companyName"`
	ApplicationsCount int    `json:"applicationsCount"`
}

// DashboardOverview is the read-only aggregate served by the backend.
// ApplicationsByStatus may omit statuses with no applications.
type DashboardOverview struct {
	TotalCompanies             int                          `json:"totalCompanies"`
	TotalApplications          int                          `json:"totalApplications"`
	ApplicationsByStatus       []StatusCount                `json:"applicationsByStatus"`
	RecentApplications         []JobApplication             `json:"recentApplications"`
	TopCompaniesByApplications []CompanyApplicationsSummary `json:"topCompaniesByApplications"`
}

// Clone returns a copy of o that shares no slices with it.
func (o *DashboardOverview) Clone() *DashboardOverview {
	if o == nil {
		return nil
	}
	c := *o
	c.ApplicationsByStatus = slices.Clone(o.ApplicationsByStatus)
	c.RecentApplications = CloneApplications(o.RecentApplications)
	c.TopCompaniesByApplications = slices.Clone(o.TopCompaniesByApplications)
	return &c
}

// DashboardRepository is the resource client for the dashboard aggregate.
type DashboardRepository interface {
	Overview(ctx context.Context) (Result[DashboardOverview], error)
}

// DashboardService is the cached read surface for the dashboard.
type DashboardService interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}
