package repository

import "errors"

var (
	// ErrNotFound is returned when a row referenced by public id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrVehicleUnavailable is returned when the availability compare-and-swap
	// finds the vehicle already booked.
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	// ErrActiveBooking is returned when deleting a vehicle that still has an
	// active booking referencing it.
	ErrActiveBooking = errors.New("vehicle has an active booking")
)
