package addresses

import "time"

// Address is a physical location owned by a user. UserID refers to a user by
// value only; the store enforces no relationship.
type Address struct {
	ID            int64     `json:"id"`
	StreetName    string    `json:"street_name"`
	StreetNumber  int64     `json:"street_number"`
	City          string    `json:"city"`
	PostalCode    string    `json:"postal_code"`
	Country       string    `json:"country"`
	Size          int64     `json:"size"`
	NumberOfRooms int64     `json:"number_of_rooms"`
	UserID        int64     `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	IsActive      bool      `json:"is_active"`
}
