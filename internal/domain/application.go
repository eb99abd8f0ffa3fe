package domain

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// JobApplication is a server-owned application record. CompanyName and
// LastUpdated are maintained by the server.
type JobApplication struct {
	ID            string            `json:"id"`
	CompanyID     string            `json:"companyId"`
	CompanyName   string            `json:"companyName"`
	PositionTitle string            `json:"positionTitle"`
	Status        ApplicationStatus `json:"status"`
	AppliedDate   string            `json:"appliedDate,omitempty"`
	LastUpdated   string            `json:"lastUpdated"`
	ContactEmail  string            `json:"contactEmail,omitempty"`
	ContactPhone  string            `json:"contactPhone,omitempty"`
	Source        string            `json:"source,omitempty"`
	Priority      *int              `json:"priority,omitempty"`
	Notes         string            `json:"notes,omitempty"`
}

// Clone returns a copy of a that shares no pointers with it.
func (a JobApplication) Clone() JobApplication {
	if a.Priority != nil {
		p := *a.Priority
		a.Priority = &p
	}
	return a
}

// CloneApplications clones every element of items.
func CloneApplications(items []JobApplication) []JobApplication {
	if items == nil {
		return nil
	}
	out := make([]JobApplication, len(items))
	for i, a := range items {
		out[i] = a.Clone()
	}
	return out
}

// JobApplicationInput is the body of create and update requests.
//
// Priority is checked here (1..5) before anything is sent; the backend may
// enforce it again.
type JobApplicationInput struct {
	CompanyID     string            `json:"companyId" form:"companyId" binding:"required"`
	PositionTitle string            `json:"positionTitle" form:"positionTitle" binding:"required,min=2"`
	Status        ApplicationStatus `json:"status" form:"status" binding:"min=0,max=5"`
	AppliedDate   string            `json:"appliedDate,omitempty" form:"appliedDate" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ContactEmail  string            `json:"contactEmail,omitempty" form:"contactEmail" binding:"omitempty,email"`
	ContactPhone  string            `json:"contactPhone,omitempty" form:"contactPhone"`
	Source        string            `json:"source,omitempty" form:"source"`
	Priority      *int              `json:"priority,omitempty" form:"priority" binding:"omitempty,min=1,max=5"`
	Notes         string            `json:"notes,omitempty" form:"notes"`
}

// Normalize trims every string field. An applied date that is a bare
// yyyy-MM-dd or a zone-less timestamp is rewritten as midnight UTC in RFC 3339.
func (in *JobApplicationInput) Normalize() {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	in.PositionTitle = strings.TrimSpace(in.PositionTitle)
	in.AppliedDate = normalizeDate(strings.TrimSpace(in.AppliedDate))
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
	in.Source = strings.TrimSpace(in.Source)
	in.Notes = strings.TrimSpace(in.Notes)
}

// InputFromJobApplication returns the input that would recreate a.
func InputFromJobApplication(a JobApplication) JobApplicationInput {
	return JobApplicationInput{
		CompanyID:     a.CompanyID,
		PositionTitle: a.PositionTitle,
		Status:        a.Status,
		AppliedDate:   a.AppliedDate,
		ContactEmail:  a.ContactEmail,
		ContactPhone:  a.ContactPhone,
		Source:        a.Source,
		Priority:      a.Priority,
		Notes:         a.Notes,
	}
}

// JobApplicationQuery holds the list filters. Zero values mean "not
// specified"; Status is a pointer because Planned is ordinal 0.
type JobApplicationQuery struct {
	Search     string
	Status     *ApplicationStatus
	CompanyID  string
	FromDate   string
	ToDate     string
	PageNumber int
	PageSize   int
}

// Values encodes the query, omitting unspecified parameters. Status is sent
// as its ordinal.
func (q JobApplicationQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "search", q.Search)
	if q.Status != nil {
		v.Set("status", strconv.Itoa(int(*q.Status)))
	}
	setString(v, "companyId", q.CompanyID)
	setString(v, "fromDate", q.FromDate)
	setString(v, "toDate", q.ToDate)
	setInt(v, "pageNumber", q.PageNumber)
	setInt(v, "pageSize", q.PageSize)
	return v
}

// JobApplicationRepository is the resource client for job applications.
type JobApplicationRepository interface {
	List(ctx context.Context, q JobApplicationQuery) (Result[PagedResult[JobApplication]], error)
	GetByID(ctx context.Context, id string) (Result[JobApplication], error)
	Create(ctx context.Context, in JobApplicationInput) (Result[JobApplication], error)
	Update(ctx context.Context, id string, in JobApplicationInput) (Result[JobApplication], error)
	Delete(ctx context.Context, id string) (Result[Empty], error)
}

// JobApplicationService is the cached read and mutation surface for job applications.
type JobApplicationService interface {
	ListApplications(ctx context.Context, q JobApplicationQuery) (*PagedResult[JobApplication], error)
	GetApplication(ctx context.Context, id string) (*JobApplication, error)
	CreateApplication(ctx context.Context, in JobApplicationInput) (*JobApplication, error)
	UpdateApplication(ctx context.Context, id string, in JobApplicationInput) (*JobApplication, error)
	DeleteApplication(ctx context.Context, id string) error
}

func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return s
	}
	if day := ToDateInput(s); day != "" {
		if iso, err := FromDateInput(day); err == nil {
			return iso
		}
	}
	return s
}
