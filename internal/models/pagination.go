package models

import (
	"math"
	"strings"
)

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	NumPages   int `json:"num_pages"`
}

// NewPagination computes page metadata for a result of total rows.
func NewPagination(page, pageSize, total int) *Pagination {
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	return &Pagination{Page: page, PageSize: pageSize, TotalCount: total, NumPages: pages}
}

// PageRequest selects one page of a list, or all rows when Disabled.
type PageRequest struct {
	Page     int
	PageSize int
	Disabled bool
}

// Offset returns the zero-based index of the first row on the page. It
// saturates at math.MaxInt instead of overflowing.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// NormalizeEnterpriseID lowercases the id and strips hyphens; enterprise
// customer uuids are stored in hex form.
func NormalizeEnterpriseID(id string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), "-", ""))
}
