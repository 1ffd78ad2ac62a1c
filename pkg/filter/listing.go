package filter

// List filters back the flat listing endpoints. Unlike graph filters they
// may be fully empty (an unfiltered, paged listing is valid). Pointer fields
// distinguish "absent" from zero values.

// Pagination bounds a listing. Zero values mean "no limit" / "no offset".
type Pagination struct {
	Limit  int `query:"limit" validate:"min=0,max=1000000"`
	Offset int `query:"offset" validate:"min=0,max=1000000"`
}

type AuthorListFilter struct {
	AuthorID *int64  `query:"authorid"`
	ItemID   *int64  `query:"itemid"`
	Lastname string  `query:"lastname"`
	Email    string  `query:"email"`
	Status   *int64  `query:"status"`
	Language string  `query:"language"`
	Pagination
}

type ItemListFilter struct {
	ItemID             *int64 `query:"itemid"`
	Title              string `query:"title"`
	YearFrom           *int   `query:"year_from"`
	YearTo             *int   `query:"year_to"`
	Keyword            string `query:"keyword"`
	GenreID            string `query:"genreid"`
	TypeCode           string `query:"typecode"`
	ISBN               string `query:"isbn"`
	PlaceOfPublication string `query:"placeofpublication"`
	Language           string `query:"language"`
	Pagination
}

type AffiliationListFilter struct {
	Author        *int64 `query:"author"`
	Num           *int64 `query:"num"`
	AffiliationID *int64 `query:"affiliationid"`
	Name          string `query:"name"`
	Country       string `query:"country"`
	Town          string `query:"town"`
	Address       string `query:"address"`
	Language      string `query:"language"`
	Pagination
}

type OrganizationListFilter struct {
	OrganizationID   *int64 `query:"organizationid"`
	CountryID        string `query:"countryid"`
	OrganizationName string `query:"organizationname"`
	Pagination
}

type KeywordListFilter struct {
	ItemID   *int64 `query:"itemid"`
	Keyword  string `query:"keyword"`
	Language string `query:"language"`
	Pagination
}
