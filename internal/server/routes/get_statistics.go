package routes

import (
	"net/http"
	"time"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

const (
	defaultYearFrom            = 2000
	defaultCityPublications    = 10
	defaultOrgPublications     = 200
	defaultKeywordPublications = 100
	defaultRatingMinCount      = 10
	defaultRatingLimit         = 10
)

// PublicationsByYearHandler counts publications per year over an inclusive
// year range.
func PublicationsByYearHandler(c echo.Context) error {
	type yearRangeParams struct {
		YearFrom int `query:"year_from" validate:"omitempty,min=1900,max=2100"`
		YearTo   int `query:"year_to" validate:"omitempty,min=1900,max=2100"`
	}

	params := new(yearRangeParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	if params.YearFrom == 0 {
		params.YearFrom = defaultYearFrom
	}
	if params.YearTo == 0 {
		params.YearTo = time.Now().Year()
	}

	app := c.(*middleware.AppContext).App
	counts, err := app.Store.PublicationsByYear(c.Request().Context(), params.YearFrom, params.YearTo)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, counts)
}

// KeywordStatsHandler breaks keyword usage of one year down by language,
// optionally narrowed by a keyword substring and a language.
func KeywordStatsHandler(c echo.Context) error {
	type keywordStatsParams struct {
		Year     int    `query:"year" validate:"omitempty,min=1900,max=2100"`
		Keyword  string `query:"keyword"`
		Language string `query:"language" validate:"omitempty,oneof=ru en RU EN"`
	}

	params := new(keywordStatsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	if params.Year == 0 {
		params.Year = time.Now().Year()
	}

	app := c.(*middleware.AppContext).App
	stats, err := app.Store.KeywordStats(c.Request().Context(), params.Year, params.Keyword, params.Language)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

type minPublicationsParams struct {
	MinPublications int `query:"min_publications" validate:"omitempty,min=1,max=1000000"`
}

func bindMinPublications(c echo.Context, fallback int) (int, error) {
	params := new(minPublicationsParams)
	if err := c.Bind(params); err != nil {
		return 0, err
	}
	if err := c.Validate(params); err != nil {
		return 0, err
	}
	if params.MinPublications == 0 {
		params.MinPublications = fallback
	}
	return params.MinPublications, nil
}

// AuthorCityDistributionHandler counts distinct publications per city,
// keeping cities above a publication threshold.
func AuthorCityDistributionHandler(c echo.Context) error {
	minPublications, err := bindMinPublications(c, defaultCityPublications)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	entries, err := app.Store.AuthorCityDistribution(c.Request().Context(), minPublications)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// PopularOrganizationsHandler lists organization names above a publication
// threshold, for pre-filling rating dropdowns.
func PopularOrganizationsHandler(c echo.Context) error {
	minPublications, err := bindMinPublications(c, defaultOrgPublications)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	names, err := app.Store.PopularOrganizations(c.Request().Context(), minPublications)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, names)
}

// PopularKeywordsHandler lists keywords above a publication threshold.
func PopularKeywordsHandler(c echo.Context) error {
	minPublications, err := bindMinPublications(c, defaultKeywordPublications)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	keywords, err := app.Store.PopularKeywords(c.Request().Context(), minPublications)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, keywords)
}

// KeywordFrequenciesHandler dumps every keyword with its distinct
// publication count, with no threshold. Feeds word-cloud style consumers.
func KeywordFrequenciesHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	entries, err := app.Store.KeywordFrequencies(c.Request().Context())
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

type ratingParams struct {
	MinCount int `query:"min_count" validate:"omitempty,min=1,max=1000000"`
	Limit    int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (p *ratingParams) applyDefaults() {
	if p.MinCount == 0 {
		p.MinCount = defaultRatingMinCount
	}
	if p.Limit == 0 {
		p.Limit = defaultRatingLimit
	}
}

// TopOrganizationsByKeywordHandler ranks organizations publishing on a
// keyword by distinct publication count.
func TopOrganizationsByKeywordHandler(c echo.Context) error {
	type topOrganizationsParams struct {
		Keyword string `query:"keyword" validate:"required"`
		ratingParams
	}

	params := new(topOrganizationsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Parameter 'keyword' is required",
		})
	}
	params.applyDefaults()

	app := c.(*middleware.AppContext).App
	entries, err := app.Store.TopOrganizationsByKeyword(c.Request().Context(), params.Keyword, params.MinCount, params.Limit)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// TopKeywordsByOrganizationHandler ranks the keywords of one organization by
// distinct publication count.
func TopKeywordsByOrganizationHandler(c echo.Context) error {
	type topKeywordsParams struct {
		Organization string `query:"organization" validate:"required"`
		ratingParams
	}

	params := new(topKeywordsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Parameter 'organization' is required",
		})
	}
	params.applyDefaults()

	app := c.(*middleware.AppContext).App
	entries, err := app.Store.TopKeywordsByOrganization(c.Request().Context(), params.Organization, params.MinCount, params.Limit)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
