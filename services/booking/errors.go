package booking

import "errors"

// ErrInvalidBookingID is returned for ids that are not valid ObjectIDs.
var ErrInvalidBookingID = errors.New("invalid booking id")

// ErrInvalidAmount is returned when a payment amount rounds to zero cents or less.
var ErrInvalidAmount = errors.New("invalid payment amount")
