package models

import "time"

// Page is a static site page. ShowPostsFromCategoryID / ShowPostsWithTagID
// declare an optional dynamic post pull that is not wired to post-fetching
// yet; the columns are carried so the mapping stays complete.
type Page struct {
	ID                      int64     `json:"id"`
	Title                   string    `json:"title"`
	Slug                    string    `json:"slug"`
	Body                    *string   `json:"body"`
	ParentID                *int64    `json:"parent_id"`
	Template                *string   `json:"template"`
	ShowInNav               bool      `json:"show_in_nav"`
	DisplayOrder            int       `json:"display_order"`
	ShowPostsFromCategoryID *int64    `json:"show_posts_from_category_id"`
	ShowPostsWithTagID      *int64    `json:"show_posts_with_tag_id"`
	PostsPerPage            int       `json:"posts_per_page"`
	IsPublished             bool      `json:"is_published"`
	Visibility              string    `json:"visibility"`
	AuthorID                int64     `json:"author_id"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// PageDetail is a page plus the posts its dynamic pull provides; the pull is
// unwired today, so Posts is always empty.
type PageDetail struct {
	Page  Page
	Posts []FeedPost
}
