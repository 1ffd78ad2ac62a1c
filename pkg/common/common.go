package common

// Node category values. They index into Graph.Categories, so the order of
// category descriptors passed to the assembler has to match.
const (
	CategoryRelated = 0
	CategoryPrimary = 1
)

// Graph is the node/edge structure returned to the visualization layer.
// Node ids are unique within a graph and every edge endpoint references an
// existing node id.
type Graph struct {
	Nodes      []Node     `json:"nodes"`
	Links      []Edge     `json:"links"`
	Categories []Category `json:"categories"`
}

// Node represents one aggregated entity (an author or an organization).
// Value is the number of distinct publications the entity participates in.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Value    int    `json:"value"`
	Category int    `json:"category"`
}

// Edge connects two nodes. For collaboration graphs edges are undirected and
// emitted once per unordered pair with Weight = distinct shared publications.
// For citation graphs edges are directed (citing -> cited); in article
// enumeration mode Title carries the work-title pair instead of a weight.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight,omitempty"`
	Title  string `json:"title,omitempty"`
}

// Category is a display bucket for nodes.
type Category struct {
	Name string `json:"name"`
}

// LookupOption is one dropdown entry. Value keeps the database type
// (integer ids for authors and organizations, plain strings for keywords
// and cities).
type LookupOption struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// LookupPage is the shared search+page response of every filter lookup.
// On a store failure the page degrades to an empty item list with Error set
// instead of failing the request.
type LookupPage struct {
	Items   []LookupOption `json:"items"`
	HasMore bool           `json:"hasMore"`
	Total   int            `json:"total"`
	Error   string         `json:"error,omitempty"`
}

// Author is one authorship record: the same authorid appears once per
// publication and language variant.
type Author struct {
	AuthorID int64   `json:"authorid"`
	ItemID   int64   `json:"itemid"`
	Num      *int64  `json:"num"`
	Language *string `json:"language"`
	Status   *int64  `json:"status"`
	Lastname *string `json:"lastname"`
	Initials *string `json:"initials"`
	Email    *string `json:"email"`
}

// Item is a publication.
type Item struct {
	ItemID             int64   `json:"itemid"`
	Title              *string `json:"title"`
	Year               *int64  `json:"year"`
	Language           *string `json:"language"`
	GenreID            *string `json:"genreid"`
	TypeCode           *string `json:"typecode"`
	ISBN               *string `json:"isbn"`
	PlaceOfPublication *string `json:"placeofpublication"`
	Pages              *string `json:"pages"`
	Volume             *string `json:"volume"`
}

// Affiliation links an authorship record to an organization and a location.
type Affiliation struct {
	Author        int64   `json:"author"`
	Num           *int64  `json:"num"`
	Language      *string `json:"language"`
	AffiliationID *int64  `json:"affiliationid"`
	Name          *string `json:"name"`
	Country       *string `json:"country"`
	Town          *string `json:"town"`
	Address       *string `json:"address"`
}

// Organization is one registry entry of the organization catalogue.
type Organization struct {
	OrganizationID   int64   `json:"organizationid"`
	CountryID        *string `json:"countryid"`
	OrganizationName *string `json:"organizationname"`
}

// Keyword tags a publication.
type Keyword struct {
	ItemID   int64   `json:"itemid"`
	Keyword  *string `json:"keyword"`
	Language *string `json:"language"`
}

// YearCount is one bucket of the publications-by-year statistic.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// KeywordStat is one row of the per-year keyword statistic, read from the
// precomputed keyword_year_view.
type KeywordStat struct {
	Keyword  string `json:"keyword"`
	Language string `json:"language"`
	Count    int    `json:"count"`
	Year     int    `json:"year"`
}

// RatingEntry is a generic (label, count) rating row.
type RatingEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
