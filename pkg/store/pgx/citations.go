package pgx

import (
	"context"
	"fmt"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/graph"
)

const citationRowsQuery = `
SELECT author_id, author_name, citing_author, citing_author_name,
       author_item_title, citing_item_title
FROM author_citations_view
`

// CitationRows reads every citation event from the precomputed citation
// view. The view is a read-only materialized input the store does not
// maintain.
func (s *BiblioDBStorage) CitationRows(ctx context.Context) ([]graph.CitationRow, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, citationRowsQuery)
	if err != nil {
		return nil, storeErr("citation_rows", err)
	}
	defer rows.Close()

	var result []graph.CitationRow
	for rows.Next() {
		var (
			citedID     int64
			citedName   *string
			citingID    int64
			citingName  *string
			citedTitle  *string
			citingTitle *string
		)
		if err := rows.Scan(&citedID, &citedName, &citingID, &citingName, &citedTitle, &citingTitle); err != nil {
			return nil, storeErr("citation_rows", err)
		}
		result = append(result, graph.CitationRow{
			CitedID:     fmt.Sprintf("%d", citedID),
			CitedName:   deref(citedName),
			CitingID:    fmt.Sprintf("%d", citingID),
			CitingName:  deref(citingName),
			CitedTitle:  deref(citedTitle),
			CitingTitle: deref(citingTitle),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("citation_rows", err)
	}
	return result, nil
}

// ReferenceGraphRows is acknowledged but not built: the current data has no
// author-level reference links. It fails with ErrNotImplemented so callers
// can tell the difference from an empty result.
func (s *BiblioDBStorage) ReferenceGraphRows(
	ctx context.Context,
	f filter.ReferenceGraphFilter,
) ([]graph.EntityRow, error) {
	if f.IsEmpty() {
		return nil, common.NewValidationError("at least one filter is required")
	}
	return nil, fmt.Errorf("reference graph: %w", common.ErrNotImplemented)
}
