package routes

import (
	"errors"
	"net/http"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

// storeErrorResponse maps store failures onto HTTP statuses. Validation
// failures surface their reason, everything else gets a generic message so
// query text never leaks to clients.
func storeErrorResponse(c echo.Context, err error) error {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: verr.Error(),
		})
	}
	if errors.Is(err, common.ErrNotImplemented) {
		return c.JSON(http.StatusNotImplemented, errorResponse{
			Message: "Not implemented",
		})
	}
	if errors.Is(err, common.ErrStoreTimeout) {
		logger.Error("Store query timed out", "err", err)
		return c.JSON(http.StatusGatewayTimeout, errorResponse{
			Message: "Query timed out",
		})
	}
	logger.Error("Store query failed", "err", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{
		Message: "Internal server error",
	})
}
