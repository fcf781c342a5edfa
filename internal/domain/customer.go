package domain

// Customer is a directory entry. BookingsCount counts every booking ever
// created for the customer and is never decremented on cancellation.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	JoinedDate    Date   `json:"joinedDate"`
	BookingsCount int64  `json:"bookingsCount"`
}
