package models

import "time"

type Tag struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	IsActive    bool      `json:"is_active"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
