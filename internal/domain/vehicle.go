package domain

import "time"

type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBooked    Availability = "Booked"
)

// Vehicle is a catalog entry. Availability is flipped only by the booking
// engine; a vehicle with an open booking is Booked, otherwise Available.
type Vehicle struct {
	ID           string         `json:"id"`
	Model        string         `json:"model"`
	Category     string         `json:"type"`
	PricePerDay  int64          `json:"pricePerDay"`
	Image        string         `json:"image"`
	Specs        map[string]any `json:"specs,omitempty"`
	Availability Availability   `json:"availability"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
