package routes

import (
	"net/http"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// ReferenceGraphHandler accepts the reference graph contract. The store
// backing is not built yet, so valid requests currently answer 501.
func ReferenceGraphHandler(c echo.Context) error {
	f := new(filter.ReferenceGraphFilter)
	if err := c.Bind(f); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}

	if f.IsEmpty() {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "At least one author is required",
		})
	}

	app := c.(*middleware.AppContext).App
	rows, err := app.Store.ReferenceGraphRows(c.Request().Context(), *f)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, graph.Assemble(rows, graph.AuthorCategories()))
}
