package routes

import (
	"net/http"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// AuthorsByCityHandler lists the distinct author names affiliated with the
// given cities. City spellings are canonicalized first, so "st. petersburg"
// and "Санкт-Петербург" select the same affiliations.
func AuthorsByCityHandler(c echo.Context) error {
	type byCityParams struct {
		Cities []string `query:"city" validate:"required,min=1"`
	}

	type byCityResponse struct {
		Cities  []string `json:"cities"`
		Authors []string `json:"authors"`
	}

	params := new(byCityParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "At least one city is required",
		})
	}

	app := c.(*middleware.AppContext).App
	cities := app.Cities.CanonicalAll(params.Cities)

	authors, err := app.Store.AuthorsByCity(c.Request().Context(), cities)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, byCityResponse{
		Cities:  cities,
		Authors: authors,
	})
}
