package routes

import (
	"net/http"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"
	"github.com/sci-vis/elibrary/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CitationGraphHandler builds the author citation graph. The mode query
// parameter selects per-article edges or weighted pair edges.
func CitationGraphHandler(c echo.Context) error {
	type citationParams struct {
		Mode string `query:"mode"`
	}

	params := new(citationParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}

	mode := graph.CitationMode(params.Mode)
	if params.Mode == "" {
		mode = graph.CitationModeArticles
	}
	if mode != graph.CitationModeArticles && mode != graph.CitationModeWeighted {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Unknown citation mode",
		})
	}

	app := c.(*middleware.AppContext).App
	rows, err := app.Store.CitationRows(c.Request().Context())
	if err != nil {
		return storeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, graph.AssembleCitations(rows, mode))
}
