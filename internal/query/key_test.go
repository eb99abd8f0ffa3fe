package query

import (
	"net/url"
	"testing"

	"github.com/simp-lee/jobtracker/internal/domain"
)

func TestNewKey_Equality(t *testing.T) {
	status := domain.StatusApplied
	tests := []struct {
		name  string
		a, b  url.Values
		equal bool
	}{
		{
			name:  "omitted optional field",
			a:     domain.CompanyQuery{PageNumber: 1, PageSize: 10}.Values(),
			b:     domain.CompanyQuery{PageNumber: 1, PageSize: 10, Search: ""}.Values(),
			equal: true,
		},
		{
			name:  "parameter order does not matter",
			a:     url.Values{"a": {"1"}, "b": {"2"}},
			b:     url.Values{"b": {"2"}, "a": {"1"}},
			equal: true,
		},
		{
			name:  "explicit empty value equals absent",
			a:     url.Values{"search": {""}, "pageNumber": {"1"}},
			b:     url.Values{"pageNumber": {"1"}},
			equal: true,
		},
		{
			name:  "different defined value",
			a:     domain.CompanyQuery{PageNumber: 1}.Values(),
			b:     domain.CompanyQuery{PageNumber: 2}.Values(),
			equal: false,
		},
		{
			name:  "extra defined field",
			a:     domain.JobApplicationQuery{PageNumber: 1}.Values(),
			b:     domain.JobApplicationQuery{PageNumber: 1, Status: &status}.Values(),
			equal: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka := NewKey(KindCompanies, tt.a)
			kb := NewKey(KindCompanies, tt.b)
			if (ka == kb) != tt.equal {
				t.Errorf("keys %q and %q: equal = %v; want %v", ka, kb, ka == kb, tt.equal)
			}
		})
	}
}

func TestNewKey_KindMatters(t *testing.T) {
	if NewKey(KindCompanies, nil) == NewKey(KindJobApplications, nil) {
		t.Error("keys of different kinds must differ")
	}
}

func TestKey_String(t *testing.T) {
	if got := NewKey(KindDashboard, nil).String(); got != "dashboard.overview" {
		t.Errorf("String() = %q", got)
	}
	if got := IDKey(KindCompany, "c 1").String(); got != "company?id=c+1" {
		t.Errorf("String() = %q", got)
	}
}
