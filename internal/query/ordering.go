package query

import "strings"

// Ordering is one ORDER BY term.
type Ordering struct {
	Field string
	Desc  bool
}

// ParseOrdering reads a comma separated list such as "-last_activity_date,user_email".
// Fields rejected by allowed are dropped; if nothing survives the fallback is
// returned.
func ParseOrdering(raw string, allowed func(string) bool, fallback ...Ordering) []Ordering {
	var orderings []Ordering
	for _, term := range strings.Split(raw, ",") {
		term = strings.TrimSpace(term)
		desc := strings.HasPrefix(term, "-")
		field := strings.TrimPrefix(term, "-")
		if field == "" || !allowed(field) {
			continue
		}
		orderings = append(orderings, Ordering{Field: field, Desc: desc})
	}
	if len(orderings) == 0 {
		return fallback
	}
	return orderings
}

// String renders the ordering back into its request form.
func (o Ordering) String() string {
	if o.Desc {
		return "-" + o.Field
	}
	return o.Field
}

// OrderBy renders an ORDER BY clause. columns maps public field names to SQL
// expressions; tiebreak is appended to keep paging deterministic.
func OrderBy(orderings []Ordering, columns map[string]string, tiebreak string) string {
	terms := make([]string, 0, len(orderings)+1)
	for _, o := range orderings {
		column, ok := columns[o.Field]
		if !ok {
			continue
		}
		if o.Desc {
			terms = append(terms, column+" DESC")
		} else {
			terms = append(terms, column+" ASC")
		}
	}
	if tiebreak != "" {
		terms = append(terms, tiebreak)
	}
	if len(terms) == 0 {
		return ""
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}
