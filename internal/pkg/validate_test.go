package pkg

import (
	"testing"

	"github.com/simp-lee/jobtracker/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestValidate_CompanyInput(t *testing.T) {
	tests := []struct {
		name   string
		in     domain.CompanyInput
		fields map[string]string
	}{
		{name: "valid", in: domain.CompanyInput{Name: "Acme"}},
		{name: "missing name", in: domain.CompanyInput{}, fields: map[string]string{"name": "required"}},
		{
			name:   "name too long",
			in:     domain.CompanyInput{Name: string(make([]byte, 101))},
			fields: map[string]string{"name": "max=100"},
		},
		{
			name:   "bad website",
			in:     domain.CompanyInput{Name: "Acme", WebsiteURL: "not a url"},
			fields: map[string]string{"websiteUrl": "url"},
		},
		{name: "good website", in: domain.CompanyInput{Name: "Acme", WebsiteURL: "https://acme.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFields(t, Validate(tt.in), tt.fields)
		})
	}
}

func TestValidate_JobApplicationInput(t *testing.T) {
	valid := domain.JobApplicationInput{CompanyID: "c1", PositionTitle: "Engineer", Status: domain.StatusApplied}

	tests := []struct {
		name   string
		mutate func(*domain.JobApplicationInput)
		fields map[string]string
	}{
		{name: "valid", mutate: func(*domain.JobApplicationInput) {}},
		{
			name:   "missing company",
			mutate: func(in *domain.JobApplicationInput) { in.CompanyID = "" },
			fields: map[string]string{"companyId": "required"},
		},
		{
			name:   "short title",
			mutate: func(in *domain.JobApplicationInput) { in.PositionTitle = "X" },
			fields: map[string]string{"positionTitle": "min=2"},
		},
		{
			name:   "status out of range",
			mutate: func(in *domain.JobApplicationInput) { in.Status = 6 },
			fields: map[string]string{"status": "max=5"},
		},
		{
			name:   "priority zero",
			mutate: func(in *domain.JobApplicationInput) { in.Priority = intPtr(0) },
			fields: map[string]string{"priority": "min=1"},
		},
		{
			name:   "priority six",
			mutate: func(in *domain.JobApplicationInput) { in.Priority = intPtr(6) },
			fields: map[string]string{"priority": "max=5"},
		},
		{name: "priority five", mutate: func(in *domain.JobApplicationInput) { in.Priority = intPtr(5) }},
		{
			name:   "bad email",
			mutate: func(in *domain.JobApplicationInput) { in.ContactEmail = "nope" },
			fields: map[string]string{"contactEmail": "email"},
		},
		{
			name:   "bad applied date",
			mutate: func(in *domain.JobApplicationInput) { in.AppliedDate = "2024-03-01" },
			fields: map[string]string{"appliedDate": "datetime=2006-01-02T15:04:05Z07:00"},
		},
		{
			name:   "iso applied date",
			mutate: func(in *domain.JobApplicationInput) { in.AppliedDate = "2024-03-01T00:00:00Z" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			assertFields(t, Validate(in), tt.fields)
		})
	}
}

func assertFields(t *testing.T, err error, want map[string]string) {
	t.Helper()
	if len(want) == 0 {
		if err != nil {
			t.Fatalf("Validate() = %v; want nil", err)
		}
		return
	}
	if !domain.IsValidation(err) {
		t.Fatalf("Validate() = %v; want validation failure", err)
	}
	appErr := err.(*domain.AppError)
	for field, rule := range want {
		if got := appErr.Fields[field]; got != rule {
			t.Errorf("field %s = %q; want %q (all: %v)", field, got, rule, appErr.Fields)
		}
	}
}
