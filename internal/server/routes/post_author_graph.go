package routes

import (
	"net/http"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// AuthorGraphHandler builds the author collaboration graph for a filter
// posted as JSON. An empty filter is rejected before touching the store.
func AuthorGraphHandler(c echo.Context) error {
	f := new(filter.AuthorGraphFilter)
	if err := c.Bind(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}

	if f.IsEmpty() {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "At least one filter dimension is required",
		})
	}

	app := c.(*middleware.AppContext).App
	if len(f.Cities) > 0 {
		f.Cities = app.Cities.CanonicalAll(f.Cities)
	}

	rows, err := app.Store.AuthorGraphRows(c.Request().Context(), *f)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, graph.Assemble(rows, graph.AuthorCategories()))
}
