package application

import "github.com/simp-lee/jobtracker/internal/domain"

// applicationRequest is the body of the create and update views. It accepts
// appliedDate as yyyy-MM-dd as well as a full timestamp; the service
// normalizes it before validating the domain input.
type applicationRequest struct {
	CompanyID     string                   `json:"companyId" binding:"required"`
	PositionTitle string                   `json:"positionTitle" binding:"required,min=2"`
	Status        domain.ApplicationStatus `json:"status" binding:"min=0,max=5"`
	AppliedDate   string                   `json:"appliedDate"`
	ContactEmail  string                   `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone  string                   `json:"contactPhone"`
	Source        string                   `json:"source"`
	Priority      *int                     `json:"priority" binding:"omitempty,min=1,max=5"`
	Notes         string                   `json:"notes"`
}

func (r applicationRequest) input() domain.JobApplicationInput {
	return domain.JobApplicationInput{
		CompanyID:     r.CompanyID,
		PositionTitle: r.PositionTitle,
		Status:        r.Status,
		AppliedDate:   r.AppliedDate,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
		Source:        r.Source,
		Priority:      r.Priority,
		Notes:         r.Notes,
	}
}
