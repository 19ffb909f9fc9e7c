// Package dto holds the form bindings and the view models the templates
// render.
package dto

import "lifestream/internal/domain/models"

// ContactForm binds the contact page's POST body. Validation only checks
// presence; the address format is the visitor's problem.
type ContactForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Message string `form:"message" validate:"required"`
}

// FeedView renders the full feed page: home, browse, category, and tag views
// all use it.
type FeedView struct {
	Title       string
	Posts       []models.FeedPost
	NavPages    []models.Page
	CurrentTag  *models.Tag
	CurrentPath string
	ShowDates   bool
	HasNextPage bool
	NextPage    int64
	Viewer      *models.Profile
}

// FeedItemsView renders the post-list fragment the feed's "load more"
// endpoint returns.
type FeedItemsView struct {
	Posts       []models.FeedPost
	CurrentTag  *models.Tag
	ShowDates   bool
	HasNextPage bool
	NextPage    int64
}

// SearchView renders the search page: the term plus one feed page of hits.
type SearchView struct {
	Term        string
	Posts       []models.FeedPost
	NavPages    []models.Page
	ShowDates   bool
	HasNextPage bool
	NextPage    int64
	Viewer      *models.Profile
}

type DetailView struct {
	Detail    *models.PostDetail
	NavPages  []models.Page
	ShowDates bool
	Viewer    *models.Profile
}

type PageView struct {
	Detail    *models.PageDetail
	NavPages  []models.Page
	ShowDates bool
	Viewer    *models.Profile
}

// BrowseView is the home feed augmented with the taxonomy rails.
type BrowseView struct {
	Title       string
	Posts       []models.FeedPost
	NavPages    []models.Page
	Categories  []models.Category
	Tags        []models.Tag
	CurrentTag  *models.Tag
	CurrentPath string
	ShowDates   bool
	HasNextPage bool
	NextPage    int64
	Viewer      *models.Profile
}

// ContactView renders the contact page with at most one of the two banners.
// The form always re-renders blank; submitted values are not echoed back.
type ContactView struct {
	NavPages       []models.Page
	SuccessMessage string
	ErrorMessage   string
	Viewer         *models.Profile
}

type ErrorView struct {
	Status  int
	Message string
}
