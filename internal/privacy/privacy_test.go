package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedVisibilities(t *testing.T) {
	tests := []struct {
		name string
		tier string
		want []string
	}{
		{
			name: "anonymous viewer",
			tier: "",
			want: []string{"PUBLIC"},
		},
		{
			name: "public tier",
			tier: "PUBLIC",
			want: []string{"PUBLIC"},
		},
		{
			name: "registered tier",
			tier: "REGISTERED",
			want: []string{"PUBLIC"},
		},
		{
			name: "friend tier",
			tier: "FRIEND",
			want: []string{"PUBLIC", "FRIENDS"},
		},
		{
			name: "close friend tier",
			tier: "CLOSE_FRIEND",
			want: []string{"PUBLIC", "FRIENDS", "CLOSE_FRIENDS"},
		},
		{
			name: "admin tier",
			tier: "ADMIN",
			want: []string{"PUBLIC", "FRIENDS", "CLOSE_FRIENDS", "PRIVATE", "CUSTOM"},
		},
		{
			name: "unknown tier collapses to public",
			tier: "SUPERUSER",
			want: []string{"PUBLIC"},
		},
		{
			name: "lowercase tier is not recognized",
			tier: "admin",
			want: []string{"PUBLIC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedVisibilities(tt.tier))
		})
	}
}

// Each tier up the ladder must see a strict superset of the tier below it.
func TestAllowedVisibilities_Monotonic(t *testing.T) {
	ladder := []string{"", "PUBLIC", "REGISTERED", "FRIEND", "CLOSE_FRIEND", "ADMIN"}

	for i := 1; i < len(ladder); i++ {
		prev := AllowedVisibilities(ladder[i-1])
		cur := AllowedVisibilities(ladder[i])

		assert.Subset(t, cur, prev, "tier %q must include everything %q sees", ladder[i], ladder[i-1])
	}

	// Strict growth across the distinct breadth levels.
	assert.Greater(t, len(AllowedVisibilities("FRIEND")), len(AllowedVisibilities("REGISTERED")))
	assert.Greater(t, len(AllowedVisibilities("CLOSE_FRIEND")), len(AllowedVisibilities("FRIEND")))
	assert.Greater(t, len(AllowedVisibilities("ADMIN")), len(AllowedVisibilities("CLOSE_FRIEND")))
}

func TestCanView(t *testing.T) {
	assert.True(t, CanView("", "PUBLIC"))
	assert.False(t, CanView("", "FRIENDS"))
	assert.True(t, CanView("FRIEND", "FRIENDS"))
	assert.False(t, CanView("FRIEND", "CLOSE_FRIENDS"))
	assert.True(t, CanView("ADMIN", "CUSTOM"))
	assert.False(t, CanView("REGISTERED", "PRIVATE"))
}
