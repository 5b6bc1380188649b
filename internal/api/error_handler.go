package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workspace/tracking-proxy/internal/core/domain"
)

// errorEnvelope is the canonical failure shape for every endpoint:
// {"success": false, "error": "<message>"}.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Logs unexpected errors without leaking their details to the client.
//   - Renders the {success:false, error} envelope in every case.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusInternalServerError, domain.ErrMissingAPIKey.Error()
	case errors.Is(err, domain.ErrTrackingUnavailable):
		return http.StatusInternalServerError, domain.ErrTrackingUnavailable.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
