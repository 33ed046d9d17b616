package errs

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrNotAvailable     = errors.New("book is not available")
	ErrAlreadyHeld      = errors.New("member already has an active hold")
	ErrHoldConflict     = errors.New("book is on hold for another member")
	ErrLimitReached     = errors.New("member has reached the checkout limit")
	ErrDuplicateRequest = errors.New("member already has an open request for this book")
	ErrTooFewWindows    = errors.New("at least 3 pickup windows are required")
	ErrNotPending       = errors.New("request is no longer pending")
	ErrNotApproved      = errors.New("request is not in approved status")
	ErrAlreadySelected  = errors.New("a pickup window has already been selected")
	ErrInvalidIndex     = errors.New("invalid window selection")
	ErrNotActive        = errors.New("hold is no longer active")
	ErrExpired          = errors.New("hold has expired")
	ErrInvalidState     = errors.New("operation not allowed in current state")
	ErrConflict         = errors.New("document was modified concurrently")
	ErrForbidden        = errors.New("operation not permitted for this role")
)
