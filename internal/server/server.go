package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/sci-vis/elibrary/backend/internal/server/middleware"
	"github.com/sci-vis/elibrary/backend/internal/util"
	"github.com/sci-vis/elibrary/backend/pkg/logger"
	"github.com/sci-vis/elibrary/backend/pkg/names"
	storepgx "github.com/sci-vis/elibrary/backend/pkg/store/pgx"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := pgxpool.New(ctx, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()

	queryTimeout := time.Duration(util.GetEnvNumeric("QUERY_TIMEOUT_MS", 15000)) * time.Millisecond
	biblioStore := storepgx.NewBiblioDBStorage(conn, storepgx.WithQueryTimeout(queryTimeout))

	cityAliases, err := names.LoadCityAliases(util.GetEnv("CITY_ALIASES_FILE"))
	if err != nil {
		logger.Fatal("Failed to load city alias table", "err", err)
	}

	app := &mid.App{
		DBConn: conn,
		Store:  biblioStore,
		Cities: cityAliases,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
