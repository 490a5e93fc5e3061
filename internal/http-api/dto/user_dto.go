package dto

// CreateUserRequest creates a rater identity.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// UpdateUserRequest renames a user; renaming is the only supported edit.
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// UserListQuery filters the admin user list.
type UserListQuery struct {
	Username string
	Page     int
	PageSize int
}
