package pgx

import (
	"context"
	"fmt"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/graph"
)

// Organizations are keyed by organizationid, not by their (non-unique)
// display names, and weights count distinct item ids per organization. An
// author affiliated with several organizations on the same publication
// contributes that publication once to each organization, never twice to
// one.
const organizationGraphQuery = `
WITH filtered_orgs AS (
    SELECT DISTINCT e.organizationid,
           e.organizationname,
           a.itemid
    FROM elibrary_organizations e
    JOIN affiliations aff ON aff.affiliationid = e.organizationid
    JOIN authors a ON a.id = aff.author
    JOIN keywords k ON k.itemid = a.itemid
    WHERE e.organizationid IS NOT NULL%s
),
related_candidates AS (
    SELECT e.organizationid
    FROM elibrary_organizations e
    JOIN affiliations aff ON aff.affiliationid = e.organizationid
    JOIN authors a ON a.id = aff.author
    JOIN filtered_orgs fo ON fo.itemid = a.itemid
    WHERE e.organizationid NOT IN (SELECT organizationid FROM filtered_orgs)
    GROUP BY e.organizationid
    HAVING COUNT(DISTINCT a.itemid) >= %s
),
related_orgs AS (
    SELECT DISTINCT e.organizationid,
           e.organizationname,
           a.itemid
    FROM elibrary_organizations e
    JOIN affiliations aff ON aff.affiliationid = e.organizationid
    JOIN authors a ON a.id = aff.author
    JOIN related_candidates rc ON rc.organizationid = e.organizationid
    JOIN filtered_orgs fo ON fo.itemid = a.itemid
)
SELECT organizationid, organizationname, itemid, 1 AS tier FROM filtered_orgs
UNION ALL
SELECT organizationid, organizationname, itemid, 0 AS tier FROM related_orgs
`

// OrganizationGraphRows resolves the primary and related organization sets
// for the collaboration graph.
func (s *BiblioDBStorage) OrganizationGraphRows(
	ctx context.Context,
	f filter.OrganizationGraphFilter,
) ([]graph.EntityRow, error) {
	if f.IsEmpty() {
		return nil, common.NewValidationError("at least one filter is required")
	}

	b := filter.NewBuilder()
	b.AnyString("k.keyword", f.Keywords)

	minShared := f.MinLinkCount
	if minShared < 1 {
		minShared = 1
	}
	query := fmt.Sprintf(organizationGraphQuery, b.And(), b.Bind(minShared))

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("organization_graph_rows", err)
	}
	defer rows.Close()

	var result []graph.EntityRow
	for rows.Next() {
		var (
			orgID  int64
			name   *string
			itemID int64
			tier   int
		)
		if err := rows.Scan(&orgID, &name, &itemID, &tier); err != nil {
			return nil, storeErr("organization_graph_rows", err)
		}
		result = append(result, graph.EntityRow{
			EntityID: fmt.Sprintf("%d", orgID),
			Name:     deref(name),
			ItemID:   itemID,
			Tier:     tier,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("organization_graph_rows", err)
	}
	return result, nil
}
