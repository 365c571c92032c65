package http

import (
	"errors"
	"log/slog"
	"net/http"

	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds carried in the response body.
const (
	KindInvalidTransition    = servers.ErrorKindInvalidTransition
	KindAlreadyDecided       = servers.ErrorKindAlreadyDecided
	KindCapacityExceeded     = servers.ErrorKindCapacityExceeded
	KindItemAlreadyFinalized = servers.ErrorKindItemAlreadyFinalized
	KindConcurrentUpdate     = servers.ErrorKindConcurrentUpdate
	KindNotFound             = servers.ErrorKindNotFound
	KindValidation           = servers.ErrorKindValidationError
	KindInternal             = servers.ErrorKindInternal
)

// classify maps an error to its status code and kind. Order matters: the
// finalized and decided sentinels are checked before the generic transition
// error they may travel with.
func classify(err error) (int, servers.ErrorKind) {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, item.ErrAlreadyFinalized):
		return http.StatusConflict, KindItemAlreadyFinalized
	case errors.Is(err, order.ErrAlreadyDecided):
		return http.StatusConflict, KindAlreadyDecided
	case errors.Is(err, partner.ErrCapacityExceeded):
		return http.StatusConflict, KindCapacityExceeded
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, KindInvalidTransition
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, KindConcurrentUpdate
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, KindNotFound
	case errs.IsValidation(err):
		return http.StatusBadRequest, KindValidation
	case errors.As(err, &httpErr):
		return httpErr.Code, kindForStatus(httpErr.Code)
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

func kindForStatus(code int) servers.ErrorKind {
	switch {
	case code == http.StatusNotFound:
		return KindNotFound
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return KindValidation
	default:
		return KindInternal
	}
}

// ErrorHandler renders errors returned by handlers as servers.Error bodies. Internal
// errors are logged and answered with a generic message.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, kind := classify(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && kind != KindInternal {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}

		if kind == KindInternal {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = http.StatusText(http.StatusInternalServerError)
		}

		body := servers.Error{Code: code, Kind: kind, Message: message}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}
