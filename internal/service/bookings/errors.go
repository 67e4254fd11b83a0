package bookings

import "errors"

var (
	ErrBookingNotFound = errors.New("service/bookings: booking not found")
	ErrCannotCancel    = errors.New("service/bookings: booking cannot be cancelled")
	ErrReasonRequired  = errors.New("service/bookings: cancellation reason is required")
	ErrInvalidStatus   = errors.New("service/bookings: invalid booking status")
	ErrInvalidInput    = errors.New("service/bookings: invalid input data")
	ErrInternal        = errors.New("service/bookings: internal error")
)
