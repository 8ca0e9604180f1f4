package httpdto

import "time"

// VendorRequest is used for POST and PUT on /api/vendors
type VendorRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

// VendorDTO represents a vendor in API responses
type VendorDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VendorsResponse is returned when listing vendors
type VendorsResponse struct {
	Vendors []VendorDTO `json:"vendors"`
}

// DeleteAllResponse is returned by bulk delete endpoints
type DeleteAllResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
