package query

import "net/url"

// Kind names a family of cached reads. Invalidation works per kind.
type Kind string

// Kinds used by the resource services.
const (
	KindCompanies       Kind = "companies"
	KindCompany         Kind = "company"
	KindCompanyOptions  Kind = "companies.options"
	KindJobApplications Kind = "jobApplications"
	KindJobApplication  Kind = "jobApplication"
	KindDashboard       Kind = "dashboard.overview"
)

// Key identifies one cached read: a kind plus its canonical parameters.
//
// Params is a url.Values encoding, so keys are sorted and parameters that were
// omitted (rather than set to an empty value) do not appear.
type Key struct {
	Kind   Kind
	Params string
}

// NewKey builds a Key from params. Callers omit unset parameters from params;
// empty values are dropped here as well.
func NewKey(kind Kind, params url.Values) Key {
	clean := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	return Key{Kind: kind, Params: clean.Encode()}
}

// IDKey builds the key of a single-record read.
func IDKey(kind Kind, id string) Key {
	return NewKey(kind, url.Values{"id": {id}})
}

// String renders the key as kind or kind?params.
func (k Key) String() string {
	if k.Params == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + "?" + k.Params
}
