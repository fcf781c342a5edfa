package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusCancelled RentalStatus = "Cancelled"
	RentalStatusCompleted RentalStatus = "Completed"
)

// Rental is a ledger entry mirroring a booking. Entries are never deleted;
// cancellation and completion update the status in place.
type Rental struct {
	ID           string       `json:"id"`
	BookingID    string       `json:"bookingId"`
	VehicleID    string       `json:"vehicleId"`
	VehicleName  string       `json:"vehicleName"`
	CustomerID   string       `json:"customerId"`
	CustomerName string       `json:"customerName"`
	StartDate    Date         `json:"startDate"`
	EndDate      Date         `json:"endDate"`
	TotalPrice   int64        `json:"totalPrice"`
	Status       RentalStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	CancelledAt  *time.Time   `json:"cancelledAt,omitempty"`
}

// Finished reports whether an active rental's period has already ended
// on the given date. Shared by the completion sweep and its tests so
// every consumer derives "effectively completed" the same way.
func (r Rental) Finished(today Date) bool {
	return r.Status == RentalStatusActive && !r.EndDate.After(today)
}
