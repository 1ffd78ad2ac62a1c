package pgx

import (
	"context"
	"fmt"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/logger"
	"github.com/sci-vis/elibrary/backend/pkg/store"
)

// lookupQuery describes one filter-dropdown data source. SQL carries a
// single %s slot where the generated predicate clause is spliced; column
// references are code-owned constants, search text and page bounds are bound
// parameters.
type lookupQuery struct {
	SQL            string
	LabelColumn    string
	ValueColumn    string
	OrderByLabel   bool
	AllowNullValue bool
}

// Author name lookups pick one canonical label per author id: lowest
// language priority first, longest name as tie-break, with Cyrillic names
// ordered before transliterations in the final listing.
const authorOptionsQuery = `
WITH matched_authors AS (
    SELECT DISTINCT value
    FROM authors_names_with_priority_view
    %s
)
SELECT value, name FROM (
    SELECT DISTINCT ON (auv.value)
        auv.value,
        auv.name
    FROM authors_names_with_priority_view auv
    JOIN matched_authors ma ON ma.value = auv.value
    ORDER BY auv.value, auv.lang_priority, auv.name_length DESC
) AS sub
ORDER BY (name ~ '^[а-яА-ЯёЁ]') DESC, name
`

const citedAuthorOptionsQuery = `
WITH matched_authors AS (
    SELECT DISTINCT value
    FROM authors_names_with_priority_view
    JOIN (
        SELECT DISTINCT author_id AS authorid
        FROM author_citations_view
    ) cited ON cited.authorid = authors_names_with_priority_view.value
    %s
)
SELECT value, name FROM (
    SELECT DISTINCT ON (auv.value)
        auv.value,
        auv.name
    FROM authors_names_with_priority_view auv
    JOIN matched_authors ma ON ma.value = auv.value
    ORDER BY auv.value, auv.lang_priority, auv.name_length DESC
) AS sub
ORDER BY (name ~ '^[а-яА-ЯёЁ]') DESC, name
`

const citingAuthorOptionsQuery = `
WITH matched_authors AS (
    SELECT DISTINCT value
    FROM authors_names_with_priority_view
    JOIN (
        SELECT DISTINCT citing_author AS authorid
        FROM author_citations_view
    ) citing ON citing.authorid = authors_names_with_priority_view.value
    %s
)
SELECT value, name FROM (
    SELECT DISTINCT ON (auv.value)
        auv.value,
        auv.name
    FROM authors_names_with_priority_view auv
    JOIN matched_authors ma ON ma.value = auv.value
    ORDER BY auv.value, auv.lang_priority, auv.name_length DESC
) AS sub
ORDER BY (name ~ '^[а-яА-ЯёЁ]') DESC, name
`

const organizationOptionsQuery = `
SELECT DISTINCT organizationid, organizationname
FROM elibrary_organizations
%s
`

const keywordOptionsQuery = `
SELECT DISTINCT keyword AS value, keyword AS label
FROM keywords
%s
`

const cityOptionsQuery = `
SELECT value, label FROM (
    SELECT DISTINCT
        town AS value,
        town AS label,
        CASE WHEN language = 'RU' THEN 0 ELSE 1 END AS lang_priority
    FROM affiliations
    %s
) AS towns
ORDER BY lang_priority, label
`

var lookupQueries = map[store.LookupDimension]lookupQuery{
	store.LookupAuthors: {
		SQL:         authorOptionsQuery,
		LabelColumn: "name",
		ValueColumn: "value",
	},
	store.LookupCitedAuthors: {
		SQL:         citedAuthorOptionsQuery,
		LabelColumn: "name",
		ValueColumn: "value",
	},
	store.LookupCitingAuthors: {
		SQL:         citingAuthorOptionsQuery,
		LabelColumn: "name",
		ValueColumn: "value",
	},
	store.LookupOrganizations: {
		SQL:          organizationOptionsQuery,
		LabelColumn:  "organizationname",
		ValueColumn:  "organizationid",
		OrderByLabel: true,
	},
	store.LookupKeywords: {
		SQL:          keywordOptionsQuery,
		LabelColumn:  "keyword",
		ValueColumn:  "keyword",
		OrderByLabel: true,
	},
	store.LookupCities: {
		SQL:         cityOptionsQuery,
		LabelColumn: "town",
		ValueColumn: "town",
	},
}

// FilterOptions serves one page of dropdown options for a filter dimension.
// A store failure degrades to an empty page with the error flag set; only
// the lookup caller sees the message, the transport layer still returns a
// well-formed page.
func (s *BiblioDBStorage) FilterOptions(
	ctx context.Context,
	dim store.LookupDimension,
	p store.LookupParams,
) common.LookupPage {
	q, ok := lookupQueries[dim]
	if !ok {
		return common.LookupPage{
			Items: []common.LookupOption{},
			Error: fmt.Sprintf("unknown lookup dimension %q", dim),
		}
	}

	page, err := s.fetchOptions(ctx, q, p)
	if err != nil {
		logger.Error("Filter lookup failed", "dimension", dim, "err", err)
		return common.LookupPage{
			Items: []common.LookupOption{},
			Error: "lookup failed",
		}
	}
	return page
}

// fetchOptions implements the shared over-fetch-and-trim pagination
// contract: perPage+1 rows are requested, hasMore is true iff the extra row
// came back, and the extra row is discarded before returning.
func (s *BiblioDBStorage) fetchOptions(
	ctx context.Context,
	q lookupQuery,
	p store.LookupParams,
) (common.LookupPage, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 20
	}

	b := filter.NewBuilder()
	if !q.AllowNullValue {
		b.NotNull(q.ValueColumn)
	}
	if p.Search != "" {
		b.ILike(q.LabelColumn, p.Search)
	}

	query := fmt.Sprintf(q.SQL, b.Where())
	if q.OrderByLabel {
		query += "ORDER BY " + q.LabelColumn + "\n"
	}
	query += "LIMIT " + b.Bind(p.PerPage+1) + " OFFSET " + b.Bind((p.Page-1)*p.PerPage)

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return common.LookupPage{}, storeErr("filter_options", err)
	}
	defer rows.Close()

	items := make([]common.LookupOption, 0, p.PerPage)
	fetched := 0
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return common.LookupPage{}, storeErr("filter_options", err)
		}
		fetched++
		if fetched > p.PerPage {
			// Over-fetched row only signals hasMore.
			continue
		}
		opt := common.LookupOption{Value: values[0]}
		if len(values) > 1 {
			if label, ok := values[1].(string); ok {
				opt.Label = label
			}
		}
		items = append(items, opt)
	}
	if err := rows.Err(); err != nil {
		return common.LookupPage{}, storeErr("filter_options", err)
	}

	return common.LookupPage{
		Items:   items,
		HasMore: fetched > p.PerPage,
		Total:   len(items),
	}, nil
}
