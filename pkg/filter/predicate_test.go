package filter

import (
	"reflect"
	"testing"
)

func TestBuilderWhere(t *testing.T) {
	tests := []struct {
		name      string
		build     func(b *Builder)
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no predicates",
			build:     func(b *Builder) {},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name: "single equality",
			build: func(b *Builder) {
				b.Eq("a.status", int64(1))
			},
			wantWhere: "WHERE a.status = $1",
			wantArgs:  []any{int64(1)},
		},
		{
			name: "membership over ids",
			build: func(b *Builder) {
				b.AnyInt64("a.authorid", []int64{42, 7})
			},
			wantWhere: "WHERE a.authorid = ANY($1)",
			wantArgs:  []any{[]int64{42, 7}},
		},
		{
			name: "empty membership adds nothing",
			build: func(b *Builder) {
				b.AnyInt64("a.authorid", nil)
				b.AnyString("k.keyword", []string{})
			},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name: "ilike wraps the fragment in the parameter",
			build: func(b *Builder) {
				b.ILike("a.lastname", "petr")
			},
			wantWhere: "WHERE a.lastname ILIKE $1",
			wantArgs:  []any{"%petr%"},
		},
		{
			name: "ilike any builds one pattern per fragment",
			build: func(b *Builder) {
				b.ILikeAny("aff.town", []string{"Москва", "Томск"})
			},
			wantWhere: "WHERE aff.town ILIKE ANY($1)",
			wantArgs:  []any{[]string{"%Москва%", "%Томск%"}},
		},
		{
			name: "conjunction keeps declaration order",
			build: func(b *Builder) {
				b.AnyInt64("a.authorid", []int64{1})
				b.GTE("i.year", 2000)
				b.LTE("i.year", 2020)
				b.NotNull("a.lastname")
			},
			wantWhere: "WHERE a.authorid = ANY($1) AND i.year >= $2 AND i.year <= $3 AND a.lastname IS NOT NULL",
			wantArgs:  []any{[]int64{1}, 2000, 2020},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.build(b)
			if got := b.Where(); got != tt.wantWhere {
				t.Errorf("Where() = %q, want %q", got, tt.wantWhere)
			}
			if got := b.Args(); !reflect.DeepEqual(got, tt.wantArgs) {
				t.Errorf("Args() = %v, want %v", got, tt.wantArgs)
			}
		})
	}
}

func TestBuilderAnd(t *testing.T) {
	b := NewBuilder()
	if got := b.And(); got != "" {
		t.Errorf("And() on empty builder = %q, want empty", got)
	}

	b.Eq("language", "RU")
	if got := b.And(); got != " AND language = $1" {
		t.Errorf("And() = %q", got)
	}
}

func TestBuilderBindNumbersAcrossPredicates(t *testing.T) {
	// A bound-only parameter takes a placeholder slot even though it never
	// appears in the WHERE clause.
	b := NewBuilder()
	threshold := b.Bind(2)
	b.Eq("k.keyword", "graphs")

	if threshold != "$1" {
		t.Errorf("Bind() = %q, want $1", threshold)
	}
	if got := b.Where(); got != "WHERE k.keyword = $2" {
		t.Errorf("Where() = %q, want WHERE k.keyword = $2", got)
	}
	if b.Empty() {
		t.Error("Empty() = true, want false after Eq")
	}
	wantArgs := []any{2, "graphs"}
	if got := b.Args(); !reflect.DeepEqual(got, wantArgs) {
		t.Errorf("Args() = %v, want %v", got, wantArgs)
	}
}
