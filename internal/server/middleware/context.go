package middleware

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/sci-vis/elibrary/backend/pkg/names"
	"github.com/sci-vis/elibrary/backend/pkg/store"
)

// App holds the per-process collaborators shared by all requests. Nothing
// here is request-mutable: the pool hands out one connection per request and
// the alias table is read-only after startup.
type App struct {
	DBConn *pgxpool.Pool
	Store  store.BiblioStorage
	Cities names.CityAliases
}

// AppContext wraps the echo context with the application collaborators and
// a per-request id used for log correlation.
type AppContext struct {
	echo.Context
	App       *App
	RequestID string
}

const requestIDHeader = "X-Request-Id"

// AppContextMiddleware attaches the App and a fresh request id to every
// request.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID, err := gonanoid.New()
			if err != nil {
				requestID = "unknown"
			}
			c.Response().Header().Set(requestIDHeader, requestID)
			return next(&AppContext{c, app, requestID})
		}
	}
}
