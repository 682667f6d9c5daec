package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every error the API returns outside a page
// screen.
type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

// GlobalErrorHandler renders handler errors as JSON. Responses are never
// empty.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := Classify(err)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

// Classify maps an error to its HTTP status and response body.
func Classify(err error) (int, ErrorResponse) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ErrorResponse{Error: ve.Message, Title: "validation error"}
	}

	switch {
	case errors.Is(err, ErrNoIdentifier):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Title: "no identifier"}
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Title: "not found"}
	}

	var fe *FetchFailedError
	if errors.As(err, &fe) {
		slog.Warn("Upstream fetch failed", "source", fe.Source, "status", fe.Status, "error", fe.Err)
		return http.StatusBadGateway, ErrorResponse{Error: "articles are temporarily unavailable", Title: "fetch failed"}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	slog.Error("Unhandled error", "error", err)
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}
