package domain

import (
	"math"
	"slices"
)

// Result is the envelope every backend response is wrapped in.
type Result[T any] struct {
	IsSuccess bool     `json:"isSuccess"`
	Errors    []string `json:"errors"`
	Data      *T       `json:"data"`
}

// Empty is the payload type of envelopes that carry no data.
type Empty struct{}

// PagedResult is the payload of list responses. All fields are server
// computed; the client trusts them.
type PagedResult[T any] struct {
	Items       []T  `json:"items"`
	PageNumber  int  `json:"pageNumber"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// Clone returns a copy of p that shares no Items backing array with it.
func (p *PagedResult[T]) Clone() *PagedResult[T] {
	if p == nil {
		return nil
	}
	c := *p
	c.Items = slices.Clone(p.Items)
	return &c
}

// NewPagedResult builds a PagedResult with TotalPages, HasPrevious and HasNext
// derived from the counts.
func NewPagedResult[T any](items []T, totalCount, pageNumber, pageSize int) PagedResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	if items == nil {
		items = []T{}
	}

	return PagedResult[T]{
		Items:       items,
		PageNumber:  pageNumber,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: pageNumber > 1,
		HasNext:     pageNumber < totalPages,
	}
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Result[T] {
	return Result[T]{IsSuccess: true, Errors: []string{}, Data: &data}
}

// Failed builds a failed envelope carrying errs.
func Failed[T any](errs ...string) Result[T] {
	if errs == nil {
		errs = []string{}
	}
	return Result[T]{IsSuccess: false, Errors: errs}
}

// Unwrap yields the envelope's data, or a DomainOperationFailed carrying the
// server's errors (or fallback when there are none) when the envelope reports
// failure or has no data.
func Unwrap[T any](r Result[T], fallback string) (T, error) {
	if !r.IsSuccess || r.Data == nil {
		var zero T
		return zero, NewDomainError(r.Errors, fallback)
	}
	return *r.Data, nil
}

// UnwrapEmpty checks an envelope whose data is irrelevant, such as the reply
// to a delete. Only IsSuccess decides the outcome.
func UnwrapEmpty[T any](r Result[T], fallback string) error {
	if !r.IsSuccess {
		return NewDomainError(r.Errors, fallback)
	}
	return nil
}
