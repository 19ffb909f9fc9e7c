package models

import "time"

// ContactSubmissionStatusNew is stamped on every submission at insert time.
const ContactSubmissionStatusNew = "NEW"

type ContactSubmission struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	OAuthProvider *string   `json:"oauth_provider"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	IPAddress     *string   `json:"ip_address"`
	UserAgent     *string   `json:"user_agent"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewContactSubmission carries a visitor's message into the store. UserID is
// nil for anonymous visitors, which is every visitor today.
type NewContactSubmission struct {
	UserID    *int64
	Name      string
	Email     string
	Message   string
	IPAddress *string
	UserAgent *string
}
