// Package query composes the SQL used to read enterprise enrollment, learner
// and offer records. Filters are kept as an ordered list of named predicates so
// callers can inspect what was applied and so every refinement runs in the
// database rather than over loaded rows.
package query

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/enterprise-data-api/internal/models"
)

// Predicate is a single AND-ed condition. Clause uses '?' placeholders; a
// clause containing OR must carry its own parentheses.
type Predicate struct {
	Name   string
	Clause string
	Args   []interface{}
}

// Query is an immutable SELECT source plus its predicates.
type Query struct {
	from       string
	predicates []Predicate
}

// Statement is a rendered SQL statement with Postgres placeholders.
type Statement struct {
	SQL  string
	Args []interface{}
}

// From starts a query over the given table expression.
func From(from string) Query {
	return Query{from: from}
}

// Where returns a copy of q refined by an additional predicate.
func (q Query) Where(name, clause string, args ...interface{}) Query {
	predicates := make([]Predicate, len(q.predicates), len(q.predicates)+1)
	copy(predicates, q.predicates)
	predicates = append(predicates, Predicate{Name: name, Clause: clause, Args: args})
	return Query{from: q.from, predicates: predicates}
}

// Names lists the applied predicates in order.
func (q Query) Names() []string {
	names := make([]string, len(q.predicates))
	for i, p := range q.predicates {
		names[i] = p.Name
	}
	return names
}

// Has reports whether a predicate with the given name was applied.
func (q Query) Has(name string) bool {
	for _, p := range q.predicates {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Select renders "SELECT columns FROM ... WHERE ..." followed by the tail
// fragments (GROUP BY, ORDER BY, LIMIT).
func (q Query) Select(columns string, tail ...string) Statement {
	var builder strings.Builder
	builder.WriteString("SELECT ")
	builder.WriteString(columns)
	builder.WriteString(" FROM ")
	builder.WriteString(q.from)

	var args []interface{}
	for i, p := range q.predicates {
		if i == 0 {
			builder.WriteString(" WHERE ")
		} else {
			builder.WriteString(" AND ")
		}
		builder.WriteString(p.Clause)
		args = append(args, p.Args...)
	}
	for _, fragment := range tail {
		if fragment == "" {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(fragment)
	}

	return Statement{SQL: sqlx.Rebind(sqlx.DOLLAR, builder.String()), Args: args}
}

// LimitOffset renders the paging tail for p, or nothing when paging is off.
func LimitOffset(p models.PageRequest) string {
	if p.Disabled || p.PageSize <= 0 {
		return ""
	}
	return fmt.Sprintf("LIMIT %d OFFSET %d", p.PageSize, p.Offset())
}

func containsPattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}
