package models

import "time"

// Contact is a single address-book entry. It belongs to exactly one user
// and is never visible to anyone else.
type Contact struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`              // 1–100 characters
	Phone     string    `json:"phone"`             // 11-digit mobile number, 1[3-9]xxxxxxxxx
	Address   string    `json:"address,omitempty"` // free text, optional
	CreatedAt time.Time `json:"created_at"`        // set once at insert; default sort key
}
