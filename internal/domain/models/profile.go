package models

import (
	"fmt"
	"time"

	"lifestream/internal/privacy"
)

type Profile struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Tier      string    `json:"tier"`
	Bio       *string   `json:"bio"`
	Location  *string   `json:"location"`
	FullName  *string   `json:"full_name"`
	Nickname  *string   `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Profile) IsAdmin() bool {
	return p.Tier == privacy.TierAdmin
}

func (p Profile) IsFriend() bool {
	switch p.Tier {
	case privacy.TierFriend, privacy.TierCloseFriend, privacy.TierAdmin:
		return true
	}
	return false
}

func (p Profile) IsCloseFriend() bool {
	return p.Tier == privacy.TierCloseFriend || p.Tier == privacy.TierAdmin
}

// DisplayName prefers the nickname, then the full name, then a generic label.
func (p Profile) DisplayName() string {
	if p.Nickname != nil && *p.Nickname != "" {
		return *p.Nickname
	}
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return fmt.Sprintf("User %d", p.UserID)
}
