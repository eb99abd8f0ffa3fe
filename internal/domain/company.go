package domain

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Company is a server-owned company record.
type Company struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrgNumber  string `json:"orgNumber,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	Industry   string `json:"industry,omitempty"`
	WebsiteURL string `json:"websiteUrl,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// CompanyInput is the body of create and update requests. Update replaces the
// whole record, so callers send every field they want to keep.
type CompanyInput struct {
	Name       string `json:"name" form:"name" binding:"required,max=100"`
	OrgNumber  string `json:"orgNumber,omitempty" form:"orgNumber"`
	City       string `json:"city,omitempty" form:"city"`
	Country    string `json:"country,omitempty" form:"country"`
	Industry   string `json:"industry,omitempty" form:"industry"`
	WebsiteURL string `json:"websiteUrl,omitempty" form:"websiteUrl" binding:"omitempty,url"`
	Notes      string `json:"notes,omitempty" form:"notes"`
}

// Normalize trims every field.
func (in *CompanyInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.OrgNumber = strings.TrimSpace(in.OrgNumber)
	in.City = strings.TrimSpace(in.City)
	in.Country = strings.TrimSpace(in.Country)
	in.Industry = strings.TrimSpace(in.Industry)
	in.WebsiteURL = strings.TrimSpace(in.WebsiteURL)
	in.Notes = strings.TrimSpace(in.Notes)
}

// InputFromCompany returns the input that would recreate c, used as the
// starting point of an edit.
func InputFromCompany(c Company) CompanyInput {
	return CompanyInput{
		Name:       c.Name,
		OrgNumber:  c.OrgNumber,
		City:       c.City,
		Country:    c.Country,
		Industry:   c.Industry,
		WebsiteURL: c.WebsiteURL,
		Notes:      c.Notes,
	}
}

// CompanyQuery holds the list filters. Zero values mean "not specified".
type CompanyQuery struct {
	PageNumber int
	PageSize   int
	Search     string
	City       string
	Country    string
	Industry   string
}

// Values encodes the query, omitting unspecified parameters.
func (q CompanyQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "pageNumber", q.PageNumber)
	setInt(v, "pageSize", q.PageSize)
	setString(v, "search", q.Search)
	setString(v, "city", q.City)
	setString(v, "country", q.Country)
	setString(v, "industry", q.Industry)
	return v
}

// CompanyRepository is the resource client for companies. It returns raw
// envelopes and does not interpret IsSuccess.
type CompanyRepository interface {
	List(ctx context.Context, q CompanyQuery) (Result[PagedResult[Company]], error)
	GetByID(ctx context.Context, id string) (Result[Company], error)
	Create(ctx context.Context, in CompanyInput) (Result[Company], error)
	Update(ctx context.Context, id string, in CompanyInput) (Result[Company], error)
	Delete(ctx context.Context, id string) (Result[Empty], error)
}

// CompanyService is the cached read and mutation surface for companies.
type CompanyService interface {
	ListCompanies(ctx context.Context, q CompanyQuery) (*PagedResult[Company], error)
	GetCompany(ctx context.Context, id string) (*Company, error)
	CompanyOptions(ctx context.Context) ([]Company, error)
	CreateCompany(ctx context.Context, in CompanyInput) (*Company, error)
	UpdateCompany(ctx context.Context, id string, in CompanyInput) (*Company, error)
	DeleteCompany(ctx context.Context, id string) error
}

func setString(v url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value > 0 {
		v.Set(key, strconv.Itoa(value))
	}
}
