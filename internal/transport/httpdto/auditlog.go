package httpdto

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogDTO represents one operation log entry in API responses
type AuditLogDTO struct {
	ID          string         `json:"id"`
	UserID      int64          `json:"user_id"`
	Username    string         `json:"username"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Details     datatypes.JSON `json:"details,omitempty"`
	IPAddress   string         `json:"ip_address,omitempty"`
	UserAgent   string         `json:"user_agent,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// AuditLogsResponse is returned when querying operation logs
type AuditLogsResponse struct {
	Logs     []AuditLogDTO `json:"logs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}
