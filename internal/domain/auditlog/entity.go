package auditlog

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Audited actions.
const (
	ActionLogin      = "login"
	ActionLogout     = "logout"
	ActionCreate     = "create"
	ActionUpload     = "upload"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionCreateUser = "create_user"
	ActionDeleteUser = "delete_user"
)

// Entry represents the operation_logs table. Rows are append-only: there
// is no update path anywhere in the codebase. Username is a string
// snapshot so the entry stays readable after the account is deleted.
type Entry struct {
	ID          string `gorm:"primaryKey" json:"id"`
	UserID      int64  `gorm:"index" json:"user_id"`
	Username    string `gorm:"not null;index" json:"username"`
	Action      string `gorm:"not null;index" json:"action"`
	Description string `gorm:"not null" json:"description"`
	Details     datatypes.JSON `json:"details,omitempty"`
	IPAddress   string `json:"ip_address,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Entry) TableName() string {
	return "operation_logs"
}

// Details is the structured payload recorded with an entry. It is
// serialized to the JSON column at the storage boundary.
type Details map[string]any

// Marshal renders the details map for storage. A nil map stores NULL.
func (d Details) Marshal() datatypes.JSON {
	if d == nil {
		return nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// Filter narrows an audit log query. All criteria are conjunctive;
// zero values are not constraints. Dates are inclusive YYYY-MM-DD bounds
// over the creation date.
type Filter struct {
	Username  string
	Action    string
	Keyword   string
	StartDate string
	EndDate   string
}
