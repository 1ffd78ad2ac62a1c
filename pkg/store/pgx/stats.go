package pgx

import (
	"context"
	"fmt"
	"strings"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
)

const publicationsByYearQuery = `
SELECT year, COUNT(*) AS publications_count
FROM items
WHERE year BETWEEN %s AND %s
GROUP BY year
ORDER BY year
`

// PublicationsByYear counts publications per year within the given range.
func (s *BiblioDBStorage) PublicationsByYear(ctx context.Context, yearFrom, yearTo int) ([]common.YearCount, error) {
	if yearFrom > yearTo {
		return nil, common.NewValidationError("year_from cannot be greater than year_to")
	}

	b := filter.NewBuilder()
	query := fmt.Sprintf(publicationsByYearQuery, b.Bind(yearFrom), b.Bind(yearTo))

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("publications_by_year", err)
	}
	defer rows.Close()

	result := make([]common.YearCount, 0)
	for rows.Next() {
		var yc common.YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, storeErr("publications_by_year", err)
		}
		result = append(result, yc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("publications_by_year", err)
	}
	return result, nil
}

// The per-year keyword counts come from keyword_year_view, a precomputed
// aggregate the store treats as a read-only input.
const keywordStatsQuery = `
SELECT keyword, language, COUNT(*) AS count
FROM keyword_year_view
WHERE year = %s%s
GROUP BY keyword, language
ORDER BY count DESC
LIMIT 150
`

// KeywordStats returns the keyword frequency statistic for one year,
// optionally narrowed by a keyword fragment and a language.
func (s *BiblioDBStorage) KeywordStats(ctx context.Context, year int, keyword, language string) ([]common.KeywordStat, error) {
	b := filter.NewBuilder()
	yearArg := b.Bind(year)
	if keyword != "" {
		b.ILike("keyword", keyword)
	}
	if language != "" {
		b.Eq("language", strings.ToUpper(language))
	}
	query := fmt.Sprintf(keywordStatsQuery, yearArg, b.And())

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("keyword_stats", err)
	}
	defer rows.Close()

	result := make([]common.KeywordStat, 0)
	for rows.Next() {
		var ks common.KeywordStat
		if err := rows.Scan(&ks.Keyword, &ks.Language, &ks.Count); err != nil {
			return nil, storeErr("keyword_stats", err)
		}
		ks.Year = year
		result = append(result, ks)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("keyword_stats", err)
	}
	return result, nil
}

const authorCityDistributionQuery = `
SELECT a.town AS city,
       COUNT(DISTINCT au.itemid) AS publications_count
FROM affiliations a
JOIN authors au ON au.authorid = a.author
WHERE a.town IS NOT NULL
GROUP BY a.town
HAVING COUNT(DISTINCT au.itemid) >= %s
ORDER BY publications_count DESC
`

// AuthorCityDistribution ranks cities by their distinct publication count.
func (s *BiblioDBStorage) AuthorCityDistribution(ctx context.Context, minPublications int) ([]common.RatingEntry, error) {
	b := filter.NewBuilder()
	query := fmt.Sprintf(authorCityDistributionQuery, b.Bind(minPublications))
	return s.ratingRows(ctx, "authors_by_city_stats", query, b.Args())
}

const popularOrganizationsQuery = `
SELECT e.organizationname
FROM elibrary_organizations e
JOIN affiliations af ON af.affiliationid = e.organizationid
JOIN authors a ON a.authorid = af.author
GROUP BY e.organizationname
HAVING COUNT(DISTINCT a.itemid) >= %s
ORDER BY e.organizationname
`

// PopularOrganizations lists organizations with at least minPublications
// distinct publications.
func (s *BiblioDBStorage) PopularOrganizations(ctx context.Context, minPublications int) ([]string, error) {
	b := filter.NewBuilder()
	query := fmt.Sprintf(popularOrganizationsQuery, b.Bind(minPublications))
	return s.labelRows(ctx, "popular_organizations", query, b.Args())
}

const popularKeywordsQuery = `
SELECT keyword
FROM keywords
WHERE keyword IS NOT NULL
GROUP BY keyword
HAVING COUNT(DISTINCT itemid) >= %s
ORDER BY keyword
`

// PopularKeywords lists keywords tagged on at least minPublications
// distinct publications.
func (s *BiblioDBStorage) PopularKeywords(ctx context.Context, minPublications int) ([]string, error) {
	b := filter.NewBuilder()
	query := fmt.Sprintf(popularKeywordsQuery, b.Bind(minPublications))
	return s.labelRows(ctx, "popular_keywords", query, b.Args())
}

const keywordFrequenciesQuery = `
SELECT keyword,
       COUNT(DISTINCT itemid) AS articles_count
FROM keywords
WHERE keyword IS NOT NULL
GROUP BY keyword
ORDER BY keyword
`

// KeywordFrequencies returns every keyword with its distinct publication
// count, ordered by keyword. Unlike PopularKeywords there is no
// occurrence threshold.
func (s *BiblioDBStorage) KeywordFrequencies(ctx context.Context) ([]common.RatingEntry, error) {
	return s.ratingRows(ctx, "keyword_frequencies", keywordFrequenciesQuery, nil)
}

const topOrganizationsByKeywordQuery = `
SELECT e.organizationname AS organization,
       COUNT(DISTINCT k.itemid) AS count
FROM keywords k
JOIN authors a ON a.itemid = k.itemid
JOIN affiliations af ON af.author = a.authorid
JOIN elibrary_organizations e ON e.organizationid = af.affiliationid
WHERE k.keyword ILIKE %s
GROUP BY e.organizationname
HAVING COUNT(DISTINCT k.itemid) >= %s
ORDER BY count DESC
LIMIT %s
`

// TopOrganizationsByKeyword ranks organizations publishing on a keyword.
func (s *BiblioDBStorage) TopOrganizationsByKeyword(ctx context.Context, keyword string, minCount, limit int) ([]common.RatingEntry, error) {
	if keyword == "" {
		return nil, common.NewValidationError("keyword is required")
	}
	b := filter.NewBuilder()
	query := fmt.Sprintf(topOrganizationsByKeywordQuery,
		b.Bind("%"+keyword+"%"), b.Bind(minCount), b.Bind(limit))
	return s.ratingRows(ctx, "top_organizations_by_keyword", query, b.Args())
}

const topKeywordsByOrganizationQuery = `
SELECT k.keyword,
       COUNT(DISTINCT a.itemid) AS count
FROM elibrary_organizations e
JOIN affiliations af ON af.affiliationid = e.organizationid
JOIN authors a ON a.authorid = af.author
JOIN keywords k ON k.itemid = a.itemid
WHERE e.organizationname ILIKE %s
GROUP BY k.keyword
HAVING COUNT(DISTINCT a.itemid) >= %s
ORDER BY count DESC
LIMIT %s
`

// TopKeywordsByOrganization ranks the keywords of one organization.
func (s *BiblioDBStorage) TopKeywordsByOrganization(ctx context.Context, organization string, minCount, limit int) ([]common.RatingEntry, error) {
	if organization == "" {
		return nil, common.NewValidationError("organization is required")
	}
	b := filter.NewBuilder()
	query := fmt.Sprintf(topKeywordsByOrganizationQuery,
		b.Bind("%"+organization+"%"), b.Bind(minCount), b.Bind(limit))
	return s.ratingRows(ctx, "top_keywords_by_organization", query, b.Args())
}

func (s *BiblioDBStorage) ratingRows(ctx context.Context, queryName, query string, args []any) ([]common.RatingEntry, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(queryName, err)
	}
	defer rows.Close()

	result := make([]common.RatingEntry, 0)
	for rows.Next() {
		var (
			name  *string
			count int
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, storeErr(queryName, err)
		}
		result = append(result, common.RatingEntry{Name: deref(name), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(queryName, err)
	}
	return result, nil
}

func (s *BiblioDBStorage) labelRows(ctx context.Context, queryName, query string, args []any) ([]string, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(queryName, err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var label *string
		if err := rows.Scan(&label); err != nil {
			return nil, storeErr(queryName, err)
		}
		if label == nil {
			continue
		}
		result = append(result, *label)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(queryName, err)
	}
	return result, nil
}
