package domain

import (
	"fmt"
	"math"
)

// MaxOffset limits how deep pagination can go, keeps Offset far from int overflow
const MaxOffset = math.MaxInt32

// Page is a paginated result. Total is the size of the full, unpaginated result set
type Page[T any] struct {
	Items    []T    `json:"items"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Query    string `json:"query,omitempty"`
}

// EmptyPage makes a page with no items, keeping requested pagination
func EmptyPage[T any](req PageRequest) Page[T] {
	return Page[T]{Items: []T{}, Total: 0, Page: req.Page, PageSize: req.PageSize}
}

// PageRequest defines requested page, 1-based
type PageRequest struct {
	Page     int
	PageSize int
}

// Validate checks page >= 1, page size in [1, maxSize] and offset of the page not above MaxOffset
func (p PageRequest) Validate(maxSize int) error {
	if p.Page < 1 {
		return &ValidationError{Field: "page", Msg: "must be at least 1"}
	}
	if p.PageSize < 1 || p.PageSize > maxSize {
		return &ValidationError{Field: "page_size", Msg: fmt.Sprintf("must be between 1 and %d", maxSize)}
	}
	if p.Page-1 > MaxOffset/p.PageSize {
		return &ValidationError{Field: "page", Msg: fmt.Sprintf("too large for page size %d", p.PageSize)}
	}
	return nil
}

// Offset returns number of items to skip
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ValidationError reports invalid input parameters, rejected before any store access
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
