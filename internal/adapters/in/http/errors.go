package http

import (
	"errors"
	"net/http"

	"apparel/internal/core/domain/services"
	"apparel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	CodeValueIsRequired   = "VALUE_IS_REQUIRED"
	CodeValueIsInvalid    = "VALUE_IS_INVALID"
	CodeValueIsOutOfRange = "VALUE_IS_OUT_OF_RANGE"
	CodeNotFound          = "NOT_FOUND"
	CodeBadRequest        = "BAD_REQUEST"
	CodeInternal          = "INTERNAL"
)

var errMissingActor = errs.NewValueIsRequiredError("X-Actor-ID")

// errorResponse maps a use case error onto a status code and body. Unknown errors are
// reported as 500 with a generic message so internals never leak.
func errorResponse(err error) (int, Error) {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, Error{Code: CodeValueIsRequired, Message: err.Error(), Field: errs.Field(err)}
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, Error{Code: CodeValueIsOutOfRange, Message: err.Error(), Field: errs.Field(err)}
	case errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, Error{Code: CodeValueIsInvalid, Message: err.Error(), Field: errs.Field(err)}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, services.ErrMissingAnchor):
		return http.StatusInternalServerError, Error{Code: CodeInternal, Message: "Order schedule cannot be projected"}
	}
	return http.StatusInternalServerError, Error{Code: CodeInternal, Message: "Internal server error"}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}
	return ctx.JSON(status, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: CodeBadRequest, Message: message})
}
