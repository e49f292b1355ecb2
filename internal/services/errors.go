package services

import "errors"

// Domain-rule violations surfaced to handlers. Each maps to exactly one
// HTTP status and error code in the handlers package.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidRole        = errors.New("role must be worker or employer")
	ErrInvalidABN         = errors.New("invalid business number")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("not permitted")
	ErrShiftNotFound      = errors.New("shift not found")
	ErrInvalidTime        = errors.New("invalid shift time range")
	ErrInvalidRate        = errors.New("invalid hourly rate")
	ErrNotApplied         = errors.New("worker has not applied")
	ErrAlreadyHired       = errors.New("another worker is already hired")
	ErrAlreadyCheckedIn   = errors.New("open check-in already exists")
	ErrNotCheckedIn       = errors.New("no open check-in")
	ErrInvalidRating      = errors.New("rating must be an integer from 1 to 5")
	ErrNotInvolved        = errors.New("reviewer is not a party to the shift")
	ErrAlreadyReviewed    = errors.New("shift already reviewed by this user")
)
