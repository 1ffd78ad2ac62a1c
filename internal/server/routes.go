package server

import (
	"github.com/sci-vis/elibrary/backend/internal/server/routes"
	"github.com/sci-vis/elibrary/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Graph routes
	graphRoutes := apiRoutes.Group("/graph")
	graphRoutes.POST("/authors/data", routes.AuthorGraphHandler)
	graphRoutes.GET("/authors/citations", routes.CitationGraphHandler)
	graphRoutes.POST("/organizations/data", routes.OrganizationGraphHandler)
	graphRoutes.POST("/references/data", routes.ReferenceGraphHandler)

	// Filter dropdown routes
	filterRoutes := graphRoutes.Group("/filters")
	filterRoutes.GET("", routes.FilterPanelHandler)
	filterRoutes.GET("/authors", routes.FilterOptionsHandler(store.LookupAuthors))
	filterRoutes.GET("/cited_authors", routes.FilterOptionsHandler(store.LookupCitedAuthors))
	filterRoutes.GET("/citing_authors", routes.FilterOptionsHandler(store.LookupCitingAuthors))
	filterRoutes.GET("/organizations", routes.FilterOptionsHandler(store.LookupOrganizations))
	filterRoutes.GET("/keywords", routes.FilterOptionsHandler(store.LookupKeywords))
	filterRoutes.GET("/cities", routes.FilterOptionsHandler(store.LookupCities))

	// Flat listing routes
	apiRoutes.GET("/authors", routes.ListAuthorsHandler)
	apiRoutes.GET("/authors/by-city", routes.AuthorsByCityHandler)
	apiRoutes.GET("/items", routes.ListItemsHandler)
	apiRoutes.GET("/affiliations", routes.ListAffiliationsHandler)
	apiRoutes.GET("/organizations", routes.ListOrganizationsHandler)
	apiRoutes.GET("/keywords", routes.ListKeywordsHandler)
	apiRoutes.GET("/keywords/all", routes.KeywordFrequenciesHandler)
	apiRoutes.GET("/references/:type", routes.ReferenceValuesHandler)

	// Statistics routes
	statsRoutes := apiRoutes.Group("/statistics")
	statsRoutes.GET("/publications-by-year", routes.PublicationsByYearHandler)
	statsRoutes.GET("/keywords", routes.KeywordStatsHandler)
	statsRoutes.GET("/authors-by-city", routes.AuthorCityDistributionHandler)
	statsRoutes.GET("/rating/organizations", routes.PopularOrganizationsHandler)
	statsRoutes.GET("/rating/keywords", routes.PopularKeywordsHandler)
	statsRoutes.GET("/rating/organizations-by-keyword", routes.TopOrganizationsByKeywordHandler)
	statsRoutes.GET("/rating/keywords-by-organization", routes.TopKeywordsByOrganizationHandler)
}
