package domain

import "time"

// LoginEvent is one entry of the login audit trail.
type LoginEvent struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       Role      `json:"role,omitempty"`
	AccountID  int64     `json:"account_id,omitempty"`
	Success    bool      `json:"success"`
	Reason     string    `json:"reason,omitempty"`
	RemoteIP   string    `json:"remote_ip,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
