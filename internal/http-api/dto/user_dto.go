package dto

// RegisterUserRequest: public registration payload. Role is never accepted
// here; the first registrant is elevated server-side.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateProfileRequest: self-service partial update, identity comes from the
// access token. No role field on purpose.
type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,min=4,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Image    *string `json:"image"`
}

// CreateUserRequest: administrative user creation.
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=4,max=20"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"omitempty,oneof=user admin superadmin"`
	Image    *string `json:"image"`
}

// UpdateUserRequest: administrative partial update of another user.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=4,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin superadmin"`
	Image    *string `json:"image"`
}

// ListUsersQuery: paged user listing with an optional role filter.
type ListUsersQuery struct {
	PaginationQuery
	Role string `form:"role" binding:"omitempty,oneof=user admin superadmin"`
}
