package httpdto

// LoginRequest is used for POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	ExpiresIn int64   `json:"expires_in"`
	User      UserDTO `json:"user"`
}

// UserDTO represents an account in API responses
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"student_id,omitempty"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}
