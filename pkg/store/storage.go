package store

import (
	"context"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/graph"
)

// LookupDimension names one filter-dropdown data source.
type LookupDimension string

const (
	LookupAuthors       LookupDimension = "authors"
	LookupCitedAuthors  LookupDimension = "cited_authors"
	LookupCitingAuthors LookupDimension = "citing_authors"
	LookupOrganizations LookupDimension = "organizations"
	LookupKeywords      LookupDimension = "keywords"
	LookupCities        LookupDimension = "cities"
)

// LookupParams are the shared search+page arguments of every lookup.
type LookupParams struct {
	Search  string
	Page    int
	PerPage int
}

// GraphStorage resolves the row-level primary and related entity sets that
// the assembler aggregates into graphs. Implementations run each resolution
// as a single logical unit against the store, so the related set is computed
// against a frozen snapshot of the primary set.
type GraphStorage interface {
	AuthorGraphRows(ctx context.Context, f filter.AuthorGraphFilter) ([]graph.EntityRow, error)
	OrganizationGraphRows(ctx context.Context, f filter.OrganizationGraphFilter) ([]graph.EntityRow, error)
	ReferenceGraphRows(ctx context.Context, f filter.ReferenceGraphFilter) ([]graph.EntityRow, error)
	CitationRows(ctx context.Context) ([]graph.CitationRow, error)
}

// LookupStorage serves the paginated filter dropdowns. A store failure
// degrades to an empty page with the Error field set instead of an error
// return, so the transport layer never sees an exception from this path.
type LookupStorage interface {
	FilterOptions(ctx context.Context, dim LookupDimension, p LookupParams) common.LookupPage
}

// ListStorage serves the flat listing endpoints.
type ListStorage interface {
	Authors(ctx context.Context, f filter.AuthorListFilter) ([]common.Author, error)
	Items(ctx context.Context, f filter.ItemListFilter) ([]common.Item, error)
	Affiliations(ctx context.Context, f filter.AffiliationListFilter) ([]common.Affiliation, error)
	Organizations(ctx context.Context, f filter.OrganizationListFilter) ([]common.Organization, error)
	Keywords(ctx context.Context, f filter.KeywordListFilter) ([]common.Keyword, error)
	ReferenceValues(ctx context.Context, refType string) ([]any, error)
	AuthorsByCity(ctx context.Context, cities []string) ([]string, error)
}

// StatsStorage serves the aggregate statistics endpoints. Expensive lookups
// read precomputed views the store does not maintain.
type StatsStorage interface {
	PublicationsByYear(ctx context.Context, yearFrom, yearTo int) ([]common.YearCount, error)
	KeywordStats(ctx context.Context, year int, keyword, language string) ([]common.KeywordStat, error)
	AuthorCityDistribution(ctx context.Context, minPublications int) ([]common.RatingEntry, error)
	PopularOrganizations(ctx context.Context, minPublications int) ([]string, error)
	PopularKeywords(ctx context.Context, minPublications int) ([]string, error)
	KeywordFrequencies(ctx context.Context) ([]common.RatingEntry, error)
	TopOrganizationsByKeyword(ctx context.Context, keyword string, minCount, limit int) ([]common.RatingEntry, error)
	TopKeywordsByOrganization(ctx context.Context, organization string, minCount, limit int) ([]common.RatingEntry, error)
}

// BiblioStorage is the full read-only contract of the bibliometric store.
type BiblioStorage interface {
	GraphStorage
	LookupStorage
	ListStorage
	StatsStorage
}
