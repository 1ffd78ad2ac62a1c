package routes

import (
	"net/http"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// ReferenceValuesHandler lists the distinct values of one reference
// dimension, e.g. the known languages or publication genres.
func ReferenceValuesHandler(c echo.Context) error {
	type referenceParams struct {
		Type string `param:"type" validate:"required"`
	}

	type referenceResponse struct {
		Type   string `json:"type"`
		Values []any  `json:"values"`
	}

	params := new(referenceParams)
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

	app := c.(*middleware.AppContext).App
	values, err := app.Store.ReferenceValues(c.Request().Context(), params.Type)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, referenceResponse{
		Type:   params.Type,
		Values: values,
	})
}
