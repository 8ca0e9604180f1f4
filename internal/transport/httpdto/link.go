package httpdto

import "time"

// LinkRequest is used for POST and PUT on /api/secretary/links
type LinkRequest struct {
	Name        string `json:"name" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Description string `json:"description"`
}

// LinkDTO represents a shared link in API responses
type LinkDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LinksResponse is returned when listing shared links
type LinksResponse struct {
	Links []LinkDTO `json:"links"`
}
