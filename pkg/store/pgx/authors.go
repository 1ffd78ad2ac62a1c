package pgx

import (
	"context"
	"fmt"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/graph"
	"github.com/sci-vis/elibrary/backend/pkg/names"
)

// The resolution runs as one statement: the related CTEs see the same
// snapshot as the primary CTE, so a concurrent write between tiers cannot
// split them inconsistently. Rows stay at (author, name variant, item)
// granularity; aggregation happens in the assembler.
//
// related_candidates applies the minimum shared-item threshold per candidate
// before inclusion, which also bounds the pair join for dense collaboration
// networks.
const authorGraphQuery = `
WITH filtered_authors AS (
    SELECT DISTINCT a.authorid,
           a.lastname,
           a.initials,
           CASE WHEN a.language = 'RU' THEN 0 ELSE 1 END AS lang_priority,
           a.itemid
    FROM authors a
    JOIN affiliations aff ON aff.author = a.id
    JOIN keywords k ON k.itemid = a.itemid
    WHERE a.authorid IS NOT NULL%s
),
related_candidates AS (
    SELECT a.authorid
    FROM authors a
    JOIN filtered_authors fa ON fa.itemid = a.itemid
    WHERE a.authorid NOT IN (SELECT authorid FROM filtered_authors)
    GROUP BY a.authorid
    HAVING COUNT(DISTINCT a.itemid) >= %s
),
related_authors AS (
    SELECT DISTINCT a.authorid,
           a.lastname,
           a.initials,
           CASE WHEN a.language = 'RU' THEN 0 ELSE 1 END AS lang_priority,
           a.itemid
    FROM authors a
    JOIN related_candidates rc ON rc.authorid = a.authorid
    JOIN filtered_authors fa ON fa.itemid = a.itemid
)
SELECT authorid, lastname, initials, lang_priority, itemid, 1 AS tier FROM filtered_authors
UNION ALL
SELECT authorid, lastname, initials, lang_priority, itemid, 0 AS tier FROM related_authors
`

// AuthorGraphRows resolves the primary and related author sets for the
// collaboration graph. An empty filter fails with a ValidationError before
// any query runs; a filter matching zero rows is a valid empty result.
func (s *BiblioDBStorage) AuthorGraphRows(
	ctx context.Context,
	f filter.AuthorGraphFilter,
) ([]graph.EntityRow, error) {
	if f.IsEmpty() {
		return nil, common.NewValidationError("at least one filter is required")
	}

	b := filter.NewBuilder()
	b.AnyInt64("a.authorid", f.Authors)
	b.AnyInt64("aff.affiliationid", f.Organizations)
	b.AnyString("k.keyword", f.Keywords)
	b.AnyString("aff.town", f.Cities)

	minShared := f.MinLinkCount
	if minShared < 1 {
		minShared = 1
	}
	query := fmt.Sprintf(authorGraphQuery, b.And(), b.Bind(minShared))

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("author_graph_rows", err)
	}
	defer rows.Close()

	var result []graph.EntityRow
	for rows.Next() {
		var (
			authorID     int64
			lastname     *string
			initials     *string
			langPriority int
			itemID       int64
			tier         int
		)
		if err := rows.Scan(&authorID, &lastname, &initials, &langPriority, &itemID, &tier); err != nil {
			return nil, storeErr("author_graph_rows", err)
		}
		result = append(result, graph.EntityRow{
			EntityID:     fmt.Sprintf("%d", authorID),
			Name:         names.DisplayName(deref(lastname), deref(initials)),
			LangPriority: langPriority,
			ItemID:       itemID,
			Tier:         tier,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("author_graph_rows", err)
	}
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
