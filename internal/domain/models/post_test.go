package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPost_Preview(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "short body is returned unmodified",
			body: "hello world",
			want: "hello world",
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
		{
			name: "exactly 280 characters has no marker",
			body: strings.Repeat("a", 280),
			want: strings.Repeat("a", 280),
		},
		{
			name: "281 characters is truncated with marker",
			body: strings.Repeat("a", 281),
			want: strings.Repeat("a", 280) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Post{Body: tt.body}
			assert.Equal(t, tt.want, p.Preview())
		})
	}
}

// Truncation counts characters, not bytes, so multi-byte text never gets cut
// mid-rune.
func TestPost_Preview_MultiByte(t *testing.T) {
	p := Post{Body: strings.Repeat("é", 300)}

	got := p.Preview()

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 283, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("é", 280)+"...", got)
}

func TestFeedPost_Preview(t *testing.T) {
	long := FeedPost{Body: strings.Repeat("x", 500)}

	got := long.Preview()

	assert.Equal(t, 283, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))

	short := FeedPost{Body: "just a note"}
	assert.Equal(t, "just a note", short.Preview())
}
