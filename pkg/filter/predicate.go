package filter

import (
	"strconv"
	"strings"
)

// Builder collects a conjunction of comparison and membership predicates
// together with their positional parameters. Column names are always
// code-owned constants; filter values only ever enter the query as bound
// parameters, never as query text.
//
// Placeholders are numbered in the order values are bound, independent of
// where the predicate ends up in the final statement.
type Builder struct {
	clauses []string
	args    []any
}

// NewBuilder returns a Builder whose first placeholder is $1.
func NewBuilder() *Builder {
	return &Builder{}
}

// Bind registers a value and returns its placeholder. Used for parameters
// that are not WHERE predicates, e.g. LIMIT/OFFSET or HAVING thresholds.
func (b *Builder) Bind(value any) string {
	b.args = append(b.args, value)
	return "$" + strconv.Itoa(len(b.args))
}

// Eq adds `column = $n`.
func (b *Builder) Eq(column string, value any) {
	b.clauses = append(b.clauses, column+" = "+b.Bind(value))
}

// AnyInt64 adds a membership predicate over an integer id set. A nil or
// empty set adds nothing. Array binding has no degenerate one-element case,
// so no sentinel padding is needed.
func (b *Builder) AnyInt64(column string, values []int64) {
	if len(values) == 0 {
		return
	}
	b.clauses = append(b.clauses, column+" = ANY("+b.Bind(values)+")")
}

// AnyString adds a membership predicate over a string set.
func (b *Builder) AnyString(column string, values []string) {
	if len(values) == 0 {
		return
	}
	b.clauses = append(b.clauses, column+" = ANY("+b.Bind(values)+")")
}

// ILike adds a case-insensitive substring predicate. The fragment is
// embedded into the bound pattern, not into the query text.
func (b *Builder) ILike(column, fragment string) {
	b.clauses = append(b.clauses, column+" ILIKE "+b.Bind("%"+fragment+"%"))
}

// ILikeAny adds a predicate matching the column against any of the given
// substrings.
func (b *Builder) ILikeAny(column string, fragments []string) {
	if len(fragments) == 0 {
		return
	}
	patterns := make([]string, len(fragments))
	for i, f := range fragments {
		patterns[i] = "%" + f + "%"
	}
	b.clauses = append(b.clauses, column+" ILIKE ANY("+b.Bind(patterns)+")")
}

// GTE adds `column >= $n`.
func (b *Builder) GTE(column string, value any) {
	b.clauses = append(b.clauses, column+" >= "+b.Bind(value))
}

// LTE adds `column <= $n`.
func (b *Builder) LTE(column string, value any) {
	b.clauses = append(b.clauses, column+" <= "+b.Bind(value))
}

// NotNull adds `column IS NOT NULL`.
func (b *Builder) NotNull(column string) {
	b.clauses = append(b.clauses, column+" IS NOT NULL")
}

// Empty reports whether no predicate has been added. Bound-only parameters
// (Bind) do not count.
func (b *Builder) Empty() bool {
	return len(b.clauses) == 0
}

// Where renders the predicates as a WHERE clause, or an empty string when
// there are none.
func (b *Builder) Where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.clauses, " AND ")
}

// And renders the predicates prefixed with AND for appending to an existing
// WHERE clause, or an empty string when there are none.
func (b *Builder) And() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(b.clauses, " AND ")
}

// Args returns the bound parameters in declaration order.
func (b *Builder) Args() []any {
	return b.args
}
