package users

// CreateUserRequest is the JSON body for POST /users/. Pointer fields tell an
// absent key apart from a zero value.
type CreateUserRequest struct {
	Name        *string `json:"name" validate:"required,min=1"`
	Email       *string `json:"email" validate:"required,email"`
	Phone       *string `json:"phone" validate:"required"`
	Password    *string `json:"password" validate:"required,min=1,max=72"`
	IsHomeOwner *bool   `json:"is_home_owner" validate:"required"`
}
