package addresses

// CreateAddressRequest is the JSON body for POST /address/.
type CreateAddressRequest struct {
	StreetName    *string `json:"street_name" validate:"required"`
	StreetNumber  *int64  `json:"street_number" validate:"required"`
	City          *string `json:"city" validate:"required"`
	PostalCode    *string `json:"postal_code" validate:"required"`
	Country       *string `json:"country" validate:"required"`
	UserID        *int64  `json:"user_id" validate:"required"`
	Size          *int64  `json:"size" validate:"required"`
	NumberOfRooms *int64  `json:"number_of_rooms" validate:"required"`
}
