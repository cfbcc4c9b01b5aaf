package models

import "time"

// LoginLog records one successful login for the admin audit trail.
type LoginLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	UserEmail string    `json:"user_email,omitempty"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
