package httpdto

import "time"

// MeetingRequest is used for POST and PUT on /api/secretary/meetings
type MeetingRequest struct {
	MeetingDate  string `json:"meetingDate" binding:"required"`
	RecorderName string `json:"recorderName" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

// MeetingDTO represents a meeting record in API responses
type MeetingDTO struct {
	ID           string    `json:"id"`
	MeetingDate  string    `json:"meetingDate"`
	RecorderName string    `json:"recorderName"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MeetingsResponse is returned when listing meeting records
type MeetingsResponse struct {
	Meetings []MeetingDTO `json:"meetings"`
}
