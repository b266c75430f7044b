package models

import (
	"strings"

	"github.com/vendorops/vos-engine/pkg/apperrors"
)

// Pagination limits for report requests.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SortOrder is the binarized sort direction: anything other than
// case-insensitive "ASC" is treated as DESC.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder binarizes a caller-supplied direction. Unknown values fall
// back to DESC; this is a silent default, not an error.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// ReportRequest is the ephemeral value object carrying the caller-chosen
// knobs of a pending-orders report. VendorID is the mandatory tenant filter;
// its absence is a terminal error for the request.
type ReportRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
	VendorID  int
}

// Offset returns the OFFSET for the requested page. There is no upper bound
// beyond the limit range; the database returning zero rows past the end is
// not an error.
func (r ReportRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Pagination is the derived pagination envelope attached to report
// responses. It is computed, never stored.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalRecords int  `json:"totalRecords"`
	Limit        int  `json:"limit"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// NewPagination derives the envelope from the request and the total record
// count: totalPages = ceil(totalRecords/limit).
func NewPagination(page, limit, totalRecords int) Pagination {
	totalPages := (totalRecords + limit - 1) / limit
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		Limit:        limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// Sorting echoes the effective sort knobs back to the caller.
type Sorting struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// DraftCategory selects one of the five purchase-order-draft join graphs.
// Each product family has its own variant and approval tables.
type DraftCategory string

const (
	CategoryMaterial      DraftCategory = "Material"
	CategoryPreps         DraftCategory = "Preps"
	CategoryAccessories   DraftCategory = "Accessories"
	CategoryPackaging     DraftCategory = "Packaging"
	CategoryFinishProduct DraftCategory = "Finish Product"
)

// DraftCategories lists the closed enum in display order.
var DraftCategories = []DraftCategory{
	CategoryMaterial,
	CategoryPreps,
	CategoryAccessories,
	CategoryPackaging,
	CategoryFinishProduct,
}

// ParseDraftCategory resolves a caller-supplied category. Empty defaults to
// Material; an unknown value is a hard rejection, deliberately unlike the
// sort-column fallback.
func ParseDraftCategory(s string) (DraftCategory, error) {
	if s == "" {
		return CategoryMaterial, nil
	}
	for _, c := range DraftCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", apperrors.ErrInvalidCategory
}
