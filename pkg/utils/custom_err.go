package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrIndexOutOfRange  = errors.New("index out of range")

	ErrNotAFriend        = errors.New("selected user is not a friend")
	ErrDuplicateTraveler = errors.New("traveler already attached to itinerary")
	ErrTravelerNotFound  = errors.New("traveler not found on itinerary")

	ErrPermissionDenied = errors.New("permission denied")
	// ErrItineraryNotAccessible is the uniform denial: callers must not be able to
	// tell a missing itinerary from a private one they may not see.
	ErrItineraryNotAccessible = errors.New("itinerary not accessible")

	// ErrBudgetInvariantViolation means a stored total drifted from its boards.
	// It can only come from a bug, never from bad input.
	ErrBudgetInvariantViolation = errors.New("budget invariant violation")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// IndexError wraps ErrIndexOutOfRange with the offending index so the caller
// can correct the request.
func IndexError(kind string, index, length int) error {
	return fmt.Errorf("%w: %s index %d (have %d)", ErrIndexOutOfRange, kind, index, length)
}
