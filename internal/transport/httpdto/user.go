package httpdto

// CreateUserRequest is used for POST /api/users
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	StudentID string `json:"student_id"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

// UsersResponse is returned when listing accounts
type UsersResponse struct {
	Users []UserDTO `json:"users"`
}
