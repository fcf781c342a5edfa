package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "Active"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking is the live reservation record. Vehicle and customer names are
// snapshots taken at creation time, immune to later renames.
type Booking struct {
	ID           string        `json:"id"`
	VehicleID    string        `json:"vehicleId"`
	VehicleName  string        `json:"vehicleName"`
	CustomerID   string        `json:"customerId"`
	CustomerName string        `json:"customerName"`
	StartDate    Date          `json:"startDate"`
	Days         int           `json:"days"`
	EndDate      Date          `json:"endDate"`
	TotalPrice   int64         `json:"totalPrice"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	CancelledAt  *time.Time    `json:"cancelledAt,omitempty"`
}
