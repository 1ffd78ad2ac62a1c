package routes

import (
	"net/http"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"
	"github.com/sci-vis/elibrary/backend/internal/util"
	"github.com/sci-vis/elibrary/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultLookupPerPage = 25
	maxLookupPerPage     = 100
)

type lookupParams struct {
	Search  string `query:"q"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

func (p *lookupParams) normalize() store.LookupParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultLookupPerPage
	}
	if p.PerPage > maxLookupPerPage {
		p.PerPage = maxLookupPerPage
	}
	return store.LookupParams{
		Search:  util.SanitizeSearchText(p.Search),
		Page:    p.Page,
		PerPage: p.PerPage,
	}
}

// FilterOptionsHandler serves one paginated dropdown lookup. Store failures
// degrade to an empty page with the error flag set, not an error status.
func FilterOptionsHandler(dimension store.LookupDimension) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := new(lookupParams)
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Message: "Invalid request params",
			})
		}

		app := c.(*middleware.AppContext).App
		page := app.Store.FilterOptions(c.Request().Context(), dimension, params.normalize())
		return c.JSON(http.StatusOK, page)
	}
}
