package dto

import (
	"fmt"
	"math"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
)

// PageQuery holds the paging and ordering parameters shared by list endpoints.
type PageQuery struct {
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1"`
	Ordering string `form:"ordering"`
}

// PageRequest resolves the requested page against the configured limits.
// noPage disables paging entirely.
func (q PageQuery) PageRequest(defaultSize, maxSize int, noPage bool) (models.PageRequest, error) {
	if noPage {
		return models.PageRequest{Disabled: true}, nil
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size == 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		return models.PageRequest{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("page_size must not exceed %d", maxSize))
	}
	if size > 0 && page-1 > math.MaxInt/size {
		return models.PageRequest{}, appErrors.Clone(appErrors.ErrValidation, "page is out of range")
	}
	return models.PageRequest{Page: page, PageSize: size}, nil
}
