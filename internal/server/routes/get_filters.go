package routes

import (
	"net/http"

	"github.com/sci-vis/elibrary/backend/internal/server/middleware"
	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/store"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// FilterPanelHandler describes the whole filter panel in one response: every
// dimension with its first option page, fetched concurrently. Individual
// lookup failures arrive as degraded pages, so the panel itself never fails.
func FilterPanelHandler(c echo.Context) error {
	type filterItem struct {
		Name          string            `json:"name"`
		Label         string            `json:"label"`
		IsMultiSelect bool              `json:"isMultiSelect"`
		Options       common.LookupPage `json:"options"`
	}

	panel := []filterItem{
		{Name: string(store.LookupAuthors), Label: "Авторы", IsMultiSelect: true},
		{Name: string(store.LookupOrganizations), Label: "Организации", IsMultiSelect: true},
		{Name: string(store.LookupKeywords), Label: "Ключевые слова", IsMultiSelect: true},
		{Name: string(store.LookupCities), Label: "Города", IsMultiSelect: true},
		{Name: string(store.LookupCitedAuthors), Label: "Цитируемые авторы", IsMultiSelect: true},
		{Name: string(store.LookupCitingAuthors), Label: "Цитирующие авторы", IsMultiSelect: true},
	}

	app := c.(*middleware.AppContext).App
	params := store.LookupParams{Page: 1, PerPage: defaultLookupPerPage}

	g, ctx := errgroup.WithContext(c.Request().Context())
	for i := range panel {
		g.Go(func() error {
			panel[i].Options = app.Store.FilterOptions(ctx, store.LookupDimension(panel[i].Name), params)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return storeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, panel)
}
