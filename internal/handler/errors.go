package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/errs"
	"github.com/pkg/errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrNotFound)
}

// httpError maps a service error to an HTTP status. Unknown errors become 500
// without leaking internals.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrAlreadyHeld),
		errors.Is(err, errs.ErrHoldConflict),
		errors.Is(err, errs.ErrLimitReached),
		errors.Is(err, errs.ErrDuplicateRequest),
		errors.Is(err, errs.ErrTooFewWindows),
		errors.Is(err, errs.ErrNotPending),
		errors.Is(err, errs.ErrNotApproved),
		errors.Is(err, errs.ErrAlreadySelected),
		errors.Is(err, errs.ErrInvalidIndex),
		errors.Is(err, errs.ErrNotActive),
		errors.Is(err, errs.ErrExpired),
		errors.Is(err, errs.ErrInvalidState):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
