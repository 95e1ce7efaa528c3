package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/turfbook/turf-booking-service/internal/dto"
)

// ErrorHandler is the single place errors become HTTP responses. Handlers
// return echo.HTTPError values; anything else is a 500. The body carries
// both a human-readable message and the underlying error text.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	detail := msg

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
			detail = m
		}
		if he.Internal != nil {
			detail = he.Internal.Error()
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg, Error: detail})
}
