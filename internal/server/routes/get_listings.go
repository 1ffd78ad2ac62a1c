package routes

import (
	"net/http"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"
	"github.com/sci-vis/elibrary/backend/pkg/filter"

	"github.com/labstack/echo/v4"
)

// The flat listing handlers share one shape: bind the query filter, validate
// the pagination bounds, hand the filter to the store unchanged. An empty
// filter is a valid full listing.

func ListAuthorsHandler(c echo.Context) error {
	f := new(filter.AuthorListFilter)
	if err := c.Bind(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	authors, err := app.Store.Authors(c.Request().Context(), *f)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, authors)
}

func ListItemsHandler(c echo.Context) error {
	f := new(filter.ItemListFilter)
	if err := c.Bind(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	items, err := app.Store.Items(c.Request().Context(), *f)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func ListAffiliationsHandler(c echo.Context) error {
	f := new(filter.AffiliationListFilter)
	if err := c.Bind(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	affiliations, err := app.Store.Affiliations(c.Request().Context(), *f)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, affiliations)
}

func ListOrganizationsHandler(c echo.Context) error {
	f := new(filter.OrganizationListFilter)
	if err := c.Bind(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	organizations, err := app.Store.Organizations(c.Request().Context(), *f)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, organizations)
}

func ListKeywordsHandler(c echo.Context) error {
	f := new(filter.KeywordListFilter)
	if err := c.Bind(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	keywords, err := app.Store.Keywords(c.Request().Context(), *f)
	if err != nil {
		return storeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, keywords)
}
