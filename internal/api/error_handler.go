package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
)

// errorEnvelope mirrors the payload-free response shape the handlers use:
// the body status code always equals the HTTP status.
type errorEnvelope struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their canonical status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the same {status_code, message} envelope as the handlers.
//
// Handlers map their own service errors; this catches everything that
// escapes them — middleware rejections, bind failures, unknown routes.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{StatusCode: code, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (auth middleware rejections, 404 from the router).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User Not Found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusNotFound, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrInvalidUserID):
		return http.StatusBadRequest, domain.ErrInvalidUserID.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
