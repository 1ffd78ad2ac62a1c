package pgx

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/names"
)

func appendPage(query string, b *filter.Builder, p filter.Pagination) string {
	if p.Limit > 0 {
		query += "\nLIMIT " + b.Bind(p.Limit)
	}
	if p.Offset > 0 {
		query += "\nOFFSET " + b.Bind(p.Offset)
	}
	return query
}

// Authors lists authorship records matching the per-field filters.
func (s *BiblioDBStorage) Authors(ctx context.Context, f filter.AuthorListFilter) ([]common.Author, error) {
	b := filter.NewBuilder()
	if f.AuthorID != nil {
		b.Eq("authorid", *f.AuthorID)
	}
	if f.ItemID != nil {
		b.Eq("itemid", *f.ItemID)
	}
	if f.Status != nil {
		b.Eq("status", *f.Status)
	}
	if f.Language != "" {
		b.Eq("language", strings.ToUpper(f.Language))
	}
	if f.Lastname != "" {
		b.ILike("lastname", f.Lastname)
	}
	if f.Email != "" {
		b.ILike("email", f.Email)
	}

	query := fmt.Sprintf(
		"SELECT authorid, itemid, num, language, status, lastname, initials, email\nFROM authors\n%s",
		b.Where(),
	)
	query = appendPage(query, b, f.Pagination)

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("list_authors", err)
	}
	defer rows.Close()

	result := make([]common.Author, 0)
	for rows.Next() {
		var a common.Author
		if err := rows.Scan(&a.AuthorID, &a.ItemID, &a.Num, &a.Language, &a.Status,
			&a.Lastname, &a.Initials, &a.Email); err != nil {
			return nil, storeErr("list_authors", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list_authors", err)
	}
	return result, nil
}

// Items lists publications matching the per-field filters. The keyword
// filter joins the keywords table, so the projection stays DISTINCT.
func (s *BiblioDBStorage) Items(ctx context.Context, f filter.ItemListFilter) ([]common.Item, error) {
	b := filter.NewBuilder()
	if f.ItemID != nil {
		b.Eq("i.itemid", *f.ItemID)
	}
	if f.Title != "" {
		b.ILike("i.title", f.Title)
	}
	if f.YearFrom != nil {
		b.GTE("i.year", *f.YearFrom)
	}
	if f.YearTo != nil {
		b.LTE("i.year", *f.YearTo)
	}
	if f.Keyword != "" {
		b.ILike("k.keyword", f.Keyword)
	}
	if f.GenreID != "" {
		b.Eq("i.genreid", f.GenreID)
	}
	if f.TypeCode != "" {
		b.Eq("i.typecode", f.TypeCode)
	}
	if f.ISBN != "" {
		b.ILike("i.isbn", f.ISBN)
	}
	if f.PlaceOfPublication != "" {
		b.ILike("i.placeofpublication", f.PlaceOfPublication)
	}
	if f.Language != "" {
		b.Eq("i.language", strings.ToUpper(f.Language))
	}

	query := fmt.Sprintf(`SELECT DISTINCT
    i.itemid, i.title, i.year, i.language, i.genreid,
    i.typecode, i.isbn, i.placeofpublication, i.pages, i.volume
FROM items i
LEFT JOIN keywords k ON k.itemid = i.itemid
%s`, b.Where())
	query = appendPage(query, b, f.Pagination)

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("list_items", err)
	}
	defer rows.Close()

	result := make([]common.Item, 0)
	for rows.Next() {
		var it common.Item
		if err := rows.Scan(&it.ItemID, &it.Title, &it.Year, &it.Language, &it.GenreID,
			&it.TypeCode, &it.ISBN, &it.PlaceOfPublication, &it.Pages, &it.Volume); err != nil {
			return nil, storeErr("list_items", err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list_items", err)
	}
	return result, nil
}

// Affiliations lists affiliation records matching the per-field filters.
func (s *BiblioDBStorage) Affiliations(ctx context.Context, f filter.AffiliationListFilter) ([]common.Affiliation, error) {
	b := filter.NewBuilder()
	if f.Author != nil {
		b.Eq("author", *f.Author)
	}
	if f.Num != nil {
		b.Eq("num", *f.Num)
	}
	if f.AffiliationID != nil {
		b.Eq("affiliationid", *f.AffiliationID)
	}
	if f.Name != "" {
		b.ILike("name", f.Name)
	}
	if f.Country != "" {
		b.ILike("country", f.Country)
	}
	if f.Town != "" {
		b.ILike("town", f.Town)
	}
	if f.Address != "" {
		b.ILike("address", f.Address)
	}
	if f.Language != "" {
		b.Eq("language", strings.ToUpper(f.Language))
	}

	query := fmt.Sprintf(
		"SELECT author, num, language, affiliationid, name, country, town, address\nFROM affiliations\n%s",
		b.Where(),
	)
	query = appendPage(query, b, f.Pagination)

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("list_affiliations", err)
	}
	defer rows.Close()

	result := make([]common.Affiliation, 0)
	for rows.Next() {
		var a common.Affiliation
		if err := rows.Scan(&a.Author, &a.Num, &a.Language, &a.AffiliationID,
			&a.Name, &a.Country, &a.Town, &a.Address); err != nil {
			return nil, storeErr("list_affiliations", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list_affiliations", err)
	}
	return result, nil
}

// Organizations lists organization catalogue entries.
func (s *BiblioDBStorage) Organizations(ctx context.Context, f filter.OrganizationListFilter) ([]common.Organization, error) {
	b := filter.NewBuilder()
	if f.OrganizationID != nil {
		b.Eq("organizationid", *f.OrganizationID)
	}
	if f.CountryID != "" {
		b.Eq("countryid", strings.ToUpper(f.CountryID))
	}
	if f.OrganizationName != "" {
		b.ILike("organizationname", f.OrganizationName)
	}

	query := fmt.Sprintf(
		"SELECT organizationid, countryid, organizationname\nFROM elibrary_organizations\n%s",
		b.Where(),
	)
	query = appendPage(query, b, f.Pagination)

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("list_organizations", err)
	}
	defer rows.Close()

	result := make([]common.Organization, 0)
	for rows.Next() {
		var o common.Organization
		if err := rows.Scan(&o.OrganizationID, &o.CountryID, &o.OrganizationName); err != nil {
			return nil, storeErr("list_organizations", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list_organizations", err)
	}
	return result, nil
}

// Keywords lists keyword rows.
func (s *BiblioDBStorage) Keywords(ctx context.Context, f filter.KeywordListFilter) ([]common.Keyword, error) {
	b := filter.NewBuilder()
	if f.ItemID != nil {
		b.Eq("itemid", *f.ItemID)
	}
	if f.Keyword != "" {
		b.ILike("keyword", f.Keyword)
	}
	if f.Language != "" {
		b.Eq("language", strings.ToUpper(f.Language))
	}

	query := fmt.Sprintf("SELECT itemid, keyword, language\nFROM keywords\n%s", b.Where())
	query = appendPage(query, b, f.Pagination)

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("list_keywords", err)
	}
	defer rows.Close()

	result := make([]common.Keyword, 0)
	for rows.Next() {
		var k common.Keyword
		if err := rows.Scan(&k.ItemID, &k.Keyword, &k.Language); err != nil {
			return nil, storeErr("list_keywords", err)
		}
		result = append(result, k)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list_keywords", err)
	}
	return result, nil
}

// referenceQueries enumerates the allowed reference value lists. The type
// key comes from a closed route allow-list, never from free user input.
var referenceQueries = map[string]string{
	"typecode":               "SELECT DISTINCT typecode FROM items WHERE typecode IS NOT NULL",
	"genreid":                "SELECT DISTINCT genreid FROM items WHERE genreid IS NOT NULL",
	"language":               "SELECT DISTINCT language FROM authors UNION SELECT DISTINCT language FROM items",
	"status":                 "SELECT DISTINCT status FROM authors WHERE status IS NOT NULL",
	"countries":              "SELECT DISTINCT country FROM affiliations WHERE country IS NOT NULL",
	"towns":                  "SELECT DISTINCT town FROM affiliations WHERE town IS NOT NULL",
	"organization_countries": "SELECT DISTINCT countryid FROM elibrary_organizations",
}

// ReferenceTypes returns the allowed reference list names.
func ReferenceTypes() []string {
	types := make([]string, 0, len(referenceQueries))
	for t := range referenceQueries {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ReferenceValues returns the sorted distinct values of one reference
// dimension. Unknown types fail with a ValidationError.
func (s *BiblioDBStorage) ReferenceValues(ctx context.Context, refType string) ([]any, error) {
	query, ok := referenceQueries[refType]
	if !ok {
		return nil, common.NewValidationError("unknown reference type %q", refType)
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, storeErr("reference_values", err)
	}
	defer rows.Close()

	result := make([]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, storeErr("reference_values", err)
		}
		if len(values) == 0 || values[0] == nil {
			continue
		}
		result = append(result, values[0])
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("reference_values", err)
	}

	sort.Slice(result, func(i, j int) bool {
		return fmt.Sprint(result[i]) < fmt.Sprint(result[j])
	})
	return result, nil
}

const authorsByCityQuery = `
SELECT a.lastname, a.initials
FROM authors a
JOIN affiliations af ON af.author = a.authorid
WHERE af.town ILIKE ANY(%s)
`

// AuthorsByCity returns the deduplicated, title-cased author names for the
// given city spellings. Names differing only in initials punctuation
// collapse to one entry.
func (s *BiblioDBStorage) AuthorsByCity(ctx context.Context, cities []string) ([]string, error) {
	if len(cities) == 0 {
		return nil, common.NewValidationError("city is required")
	}

	patterns := make([]string, len(cities))
	for i, c := range cities {
		patterns[i] = "%" + c + "%"
	}

	b := filter.NewBuilder()
	query := fmt.Sprintf(authorsByCityQuery, b.Bind(patterns))

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := s.conn.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, storeErr("authors_by_city", err)
	}
	defer rows.Close()

	unique := make(map[string]struct{})
	for rows.Next() {
		var lastname, initials *string
		if err := rows.Scan(&lastname, &initials); err != nil {
			return nil, storeErr("authors_by_city", err)
		}
		key := names.NameKey(deref(lastname), deref(initials))
		if key == "" {
			continue
		}
		unique[names.TitleCase(key)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("authors_by_city", err)
	}

	result := make([]string, 0, len(unique))
	for name := range unique {
		result = append(result, name)
	}
	sort.Strings(result)
	return result, nil
}
