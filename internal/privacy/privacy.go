// Package privacy maps a viewer's tier to the post visibility labels that
// tier is allowed to see. This lookup is the only access-control mechanism
// in the read path: every post listing must intersect its visibility filter
// with the result.
package privacy

// Tiers assigned to profiles.
const (
	TierPublic      = "PUBLIC"
	TierRegistered  = "REGISTERED"
	TierFriend      = "FRIEND"
	TierCloseFriend = "CLOSE_FRIEND"
	TierAdmin       = "ADMIN"
)

// Visibility labels carried by posts and pages.
const (
	VisibilityPublic       = "PUBLIC"
	VisibilityFriends      = "FRIENDS"
	VisibilityCloseFriends = "CLOSE_FRIENDS"
	VisibilityPrivate      = "PRIVATE"
	VisibilityCustom       = "CUSTOM"
)

// AllowedVisibilities returns the ordered list of visibility labels a viewer
// with the given tier may see. The empty string is the anonymous viewer.
// Unrecognized tiers collapse to the most restrictive case.
func AllowedVisibilities(tier string) []string {
	switch tier {
	case "", TierPublic, TierRegistered:
		return []string{VisibilityPublic}
	case TierFriend:
		return []string{VisibilityPublic, VisibilityFriends}
	case TierCloseFriend:
		return []string{VisibilityPublic, VisibilityFriends, VisibilityCloseFriends}
	case TierAdmin:
		return []string{VisibilityPublic, VisibilityFriends, VisibilityCloseFriends, VisibilityPrivate, VisibilityCustom}
	default:
		return []string{VisibilityPublic}
	}
}

// CanView reports whether a viewer with the given tier may see content
// carrying the given visibility label.
func CanView(tier, visibility string) bool {
	for _, v := range AllowedVisibilities(tier) {
		if v == visibility {
			return true
		}
	}
	return false
}
