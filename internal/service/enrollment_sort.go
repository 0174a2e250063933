package service

import (
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

// DefaultEnrollmentOrdering is applied when the request names no valid field.
var DefaultEnrollmentOrdering = query.Ordering{Field: "last_activity_date", Desc: true}

// ParseEnrollmentOrdering accepts any enrollment column.
func ParseEnrollmentOrdering(raw string) []query.Ordering {
	return query.ParseOrdering(raw, models.HasEnrollmentField, DefaultEnrollmentOrdering)
}

// sortEnrollments orders rows in place. NULLs sort first ascending and last
// descending, and ties keep their stored order.
func sortEnrollments(rows []models.Enrollment, orderings []query.Ordering) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range orderings {
			cmp := compareField(&rows[i], &rows[j], o.Field)
			if cmp == 0 {
				continue
			}
			if o.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareField(a, b *models.Enrollment, field string) int {
	av, aok := a.FieldValue(field)
	bv, bok := b.FieldValue(field)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}

	switch x := av.(type) {
	case string:
		return strings.Compare(x, bv.(string))
	case int:
		return compareOrdered(x, bv.(int))
	case int64:
		return compareOrdered(x, bv.(int64))
	case float64:
		return compareOrdered(x, bv.(float64))
	case bool:
		y := bv.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case time.Time:
		return x.Compare(bv.(time.Time))
	default:
		return 0
	}
}

func compareOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// paginate returns the requested page of rows; an out of range page is empty.
func paginate[T any](rows []T, page models.PageRequest) []T {
	if page.Disabled || page.PageSize <= 0 {
		return rows
	}
	start := page.Offset()
	if start < 0 || start >= len(rows) {
		return []T{}
	}
	end := start + page.PageSize
	if end > len(rows) || end < start {
		end = len(rows)
	}
	return rows[start:end]
}
