package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service matches exactly one of them
// with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

var (
	ErrBookingNotFound       = newError(ErrNotFound, "booking not found")
	ErrUserNotFound          = newError(ErrNotFound, "user not found")
	ErrComedianNotFound      = newError(ErrNotFound, "comedian application not found")
	ErrBookingNotPending     = newError(ErrConflict, "booking is no longer pending")
	ErrApplicationNotPending = newError(ErrConflict, "comedian application is no longer pending")
	ErrVenueFull             = newError(ErrConflict, "venue is fully booked")
	ErrEmailTaken            = newError(ErrConflict, "email is already registered")
	ErrUserHasBookings       = newError(ErrConflict, "user still owns bookings")
	ErrSelfDelete            = newError(ErrConflict, "admins cannot delete their own account")
	ErrAdminOnly             = newError(ErrNotAuthorized, "admin access required")
	ErrNotOwner              = newError(ErrNotAuthorized, "booking belongs to another user")
	ErrIdentityMismatch      = newError(ErrNotAuthorized, "email does not match the signed-in user")
	ErrInvalidCredentials    = newError(ErrNotAuthorized, "invalid email or password")
)

// Error carries a kind sentinel and a caller-facing message.
type Error struct {
	kind  error
	msg   string
	cause error
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func validationErrorf(format string, args ...any) error {
	return newError(ErrValidation, fmt.Sprintf(format, args...))
}

func storeError(op string, err error) error {
	return &Error{kind: ErrStoreUnavailable, msg: op + ": " + err.Error(), cause: err}
}
