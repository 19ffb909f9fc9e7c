package models

import "time"

// previewLimit is the number of characters of body text shown in list views.
const previewLimit = 280

type Post struct {
	ID             int64      `json:"id"`
	Title          *string    `json:"title"`
	Body           string     `json:"body"`
	Location       *string    `json:"location"`
	AuthorID       int64      `json:"author_id"`
	Visibility     string     `json:"visibility"`
	IsDraft        bool       `json:"is_draft"`
	IsPinned       bool       `json:"is_pinned"`
	IsArchived     bool       `json:"is_archived"`
	IsDeleted      bool       `json:"is_deleted"`
	CategoryID     *int64     `json:"category_id"`
	SourcePlatform string     `json:"source_platform"`
	LikeCount      int        `json:"like_count"`
	CommentCount   int        `json:"comment_count"`
	ShareCount     int        `json:"share_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Preview returns the first 280 characters of the body, with a trailing
// ellipsis marker when the body was truncated.
func (p Post) Preview() string {
	return previewText(p.Body)
}

func previewText(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLimit {
		return body
	}
	return string(runes[:previewLimit]) + "..."
}

// FeedPost is a post denormalized for list views: the featured media item
// (lowest display order, if any) and the full tag list are attached.
type FeedPost struct {
	ID             int64
	Title          *string
	Body           string
	Location       *string
	SourcePlatform string
	CreatedAt      time.Time
	FeaturedMedia  *PostMediaItem
	Tags           []Tag
}

func (p FeedPost) Preview() string {
	return previewText(p.Body)
}

// FeedPage is one page of a listing: at most the page size of enriched
// posts, plus the flags a view needs to render a "next" link. NextPage is
// always page+1; HasNextPage decides whether the link is shown.
type FeedPage struct {
	Posts       []FeedPost
	HasNextPage bool
	NextPage    int64
	Tag         *Tag // set when the listing is scoped to a tag
}

// PostDetail is a single post with everything its page renders: the full
// ordered media list, all tags, and the resolved category when one is set.
type PostDetail struct {
	Post     Post
	Media    []PostMediaItem
	Tags     []Tag
	Category *Category
}
