package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"lifestream/internal/domain/models"
	"lifestream/internal/lib/logger/sl"
	contactservice "lifestream/internal/services/contact_service"
	"lifestream/internal/storage"
	"lifestream/internal/transport/http/dto"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	contactRequiredBanner = "All fields are required."
	contactFailureBanner  = "Sorry, there was an error. Please try again."
	contactSuccessBanner  = "Thank you for your message! I'll get back to you soon."
)

type FeedService interface {
	Home(ctx context.Context, tier string, page int64) (*models.FeedPage, error)
	ByCategorySlug(ctx context.Context, tier, slug string, page int64) (*models.FeedPage, error)
	ByTagSlug(ctx context.Context, tier, slug string, page int64) (*models.FeedPage, error)
	Search(ctx context.Context, tier, term string, page int64) (*models.FeedPage, error)
	Taxonomy(ctx context.Context) ([]models.Category, []models.Tag, error)
}

type PostService interface {
	Detail(ctx context.Context, id int64) (*models.PostDetail, error)
}

type PageService interface {
	NavPages(ctx context.Context) ([]models.Page, error)
	Detail(ctx context.Context, slug string) (*models.PageDetail, error)
}

type ContactService interface {
	Submit(ctx context.Context, input contactservice.ContactInput) (*models.ContactSubmission, error)
}

type ProfileService interface {
	ByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type Routers struct {
	log            *slog.Logger
	FeedService    FeedService
	PostService    PostService
	PageService    PageService
	ContactService ContactService
	ProfileService ProfileService
}

func NewRouter(
	log *slog.Logger,
	feedService FeedService,
	postService PostService,
	pageService PageService,
	contactService ContactService,
	profileService ProfileService,
) *Routers {
	return &Routers{
		log:            log,
		FeedService:    feedService,
		PostService:    postService,
		PageService:    pageService,
		ContactService: contactService,
		ProfileService: profileService,
	}
}

// viewer resolves the session's profile. No session, no user_id value, or no
// profile row all mean an anonymous viewer.
func (r *Routers) viewer(c echo.Context) *models.Profile {
	sess, err := session.Get("session", c)
	if err != nil {
		return nil
	}

	userID, ok := sess.Values["user_id"].(int64)
	if !ok || userID == 0 {
		return nil
	}

	profile, err := r.ProfileService.ByUserID(c.Request().Context(), userID)
	if err != nil {
		r.log.Warn("failed to resolve viewer profile", slog.Int64("user_id", userID), sl.Err(err))
		return nil
	}

	return profile
}

func viewerTier(viewer *models.Profile) string {
	if viewer == nil {
		return ""
	}
	return viewer.Tier
}

// navPages fetches the nav list for a view; a failure degrades to an empty
// nav rather than taking the whole page down.
func (r *Routers) navPages(c echo.Context) []models.Page {
	pages, err := r.PageService.NavPages(c.Request().Context())
	if err != nil {
		r.log.Error("failed to load nav pages", sl.Err(err))
		return nil
	}
	return pages
}

func pageParam(c echo.Context) int64 {
	page, err := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (r *Routers) renderFeed(c echo.Context, title, currentPath string, feed *models.FeedPage) error {
	viewer := r.viewer(c)

	return c.Render(http.StatusOK, "feed.html", dto.FeedView{
		Title:       title,
		Posts:       feed.Posts,
		NavPages:    r.navPages(c),
		CurrentTag:  feed.Tag,
		CurrentPath: currentPath,
		ShowDates:   viewer != nil,
		HasNextPage: feed.HasNextPage,
		NextPage:    feed.NextPage,
		Viewer:      viewer,
	})
}

func (r *Routers) Home(c echo.Context) error {
	feed, err := r.FeedService.Home(c.Request().Context(), viewerTier(r.viewer(c)), pageParam(c))
	if err != nil {
		return err
	}

	return r.renderFeed(c, "Feed", "/", feed)
}

// Browse is the home feed plus the taxonomy rails: root categories and every
// active tag.
func (r *Routers) Browse(c echo.Context) error {
	ctx := c.Request().Context()
	viewer := r.viewer(c)

	feed, err := r.FeedService.Home(ctx, viewerTier(viewer), pageParam(c))
	if err != nil {
		return err
	}

	categories, tags, err := r.FeedService.Taxonomy(ctx)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "browse.html", dto.BrowseView{
		Title:       "Browse",
		Posts:       feed.Posts,
		NavPages:    r.navPages(c),
		Categories:  categories,
		Tags:        tags,
		CurrentPath: "/browse/",
		ShowDates:   viewer != nil,
		HasNextPage: feed.HasNextPage,
		NextPage:    feed.NextPage,
		Viewer:      viewer,
	})
}

func (r *Routers) CategoryFeed(c echo.Context) error {
	slug := c.Param("slug")

	feed, err := r.FeedService.ByCategorySlug(c.Request().Context(), viewerTier(r.viewer(c)), slug, pageParam(c))
	if err != nil {
		return err
	}

	return r.renderFeed(c, slug, "/category/"+slug+"/", feed)
}

func (r *Routers) TagFeed(c echo.Context) error {
	slug := c.Param("slug")

	feed, err := r.FeedService.ByTagSlug(c.Request().Context(), viewerTier(r.viewer(c)), slug, pageParam(c))
	if err != nil {
		return err
	}

	title := slug
	if feed.Tag != nil {
		title = feed.Tag.Name
	}

	return r.renderFeed(c, title, "/tags/"+slug+"/", feed)
}

// FeedPartial serves the list fragment the feed appends when the viewer asks
// for the next page. With a tag query parameter the fragment is scoped to
// that tag.
func (r *Routers) FeedPartial(c echo.Context) error {
	ctx := c.Request().Context()
	viewer := r.viewer(c)
	tier := viewerTier(viewer)
	page := pageParam(c)

	var (
		feed *models.FeedPage
		err  error
	)

	if tag := c.QueryParam("tag"); tag != "" {
		feed, err = r.FeedService.ByTagSlug(ctx, tier, tag, page)
	} else {
		feed, err = r.FeedService.Home(ctx, tier, page)
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "feed_items.html", dto.FeedItemsView{
		Posts:       feed.Posts,
		CurrentTag:  feed.Tag,
		ShowDates:   viewer != nil,
		HasNextPage: feed.HasNextPage,
		NextPage:    feed.NextPage,
	})
}

func (r *Routers) SearchPage(c echo.Context) error {
	viewer := r.viewer(c)
	term := c.QueryParam("q")

	feed, err := r.FeedService.Search(c.Request().Context(), viewerTier(viewer), term, pageParam(c))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "search.html", dto.SearchView{
		Term:        term,
		Posts:       feed.Posts,
		NavPages:    r.navPages(c),
		ShowDates:   viewer != nil,
		HasNextPage: feed.HasNextPage,
		NextPage:    feed.NextPage,
		Viewer:      viewer,
	})
}

func (r *Routers) PostDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	detail, err := r.PostService.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return err
	}

	viewer := r.viewer(c)

	return c.Render(http.StatusOK, "detail.html", dto.DetailView{
		Detail:    detail,
		NavPages:  r.navPages(c),
		ShowDates: viewer != nil,
		Viewer:    viewer,
	})
}

// PageDetail serves the root-level catch-all; any slug that is not a
// published page is a 404.
func (r *Routers) PageDetail(c echo.Context) error {
	slug := c.Param("slug")

	detail, err := r.PageService.Detail(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, storage.ErrPageNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Page not found")
		}
		return err
	}

	viewer := r.viewer(c)

	return c.Render(http.StatusOK, "page.html", dto.PageView{
		Detail:    detail,
		NavPages:  r.navPages(c),
		ShowDates: viewer != nil,
		Viewer:    viewer,
	})
}

func (r *Routers) ContactPage(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", dto.ContactView{
		NavPages: r.navPages(c),
		Viewer:   r.viewer(c),
	})
}

// SubmitContact always answers 200 with the contact page; the outcome is
// reported through the banner, never through the status code. Submitted
// values are not echoed back, the form re-renders blank either way.
func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"

	log := r.log.With(slog.String("op", op))

	renderResult := func(success, failure string) error {
		return c.Render(http.StatusOK, "contact.html", dto.ContactView{
			NavPages:       r.navPages(c),
			SuccessMessage: success,
			ErrorMessage:   failure,
			Viewer:         r.viewer(c),
		})
	}

	var form dto.ContactForm
	if err := c.Bind(&form); err != nil {
		log.Warn("failed to bind contact form", sl.Err(err))
		return renderResult("", contactFailureBanner)
	}

	trimmed := dto.ContactForm{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Message: strings.TrimSpace(form.Message),
	}
	if err := c.Validate(trimmed); err != nil {
		return renderResult("", contactRequiredBanner)
	}

	var ip, ua *string
	if v := c.RealIP(); v != "" {
		ip = &v
	}
	if v := c.Request().UserAgent(); v != "" {
		ua = &v
	}

	_, err := r.ContactService.Submit(c.Request().Context(), contactservice.ContactInput{
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		IPAddress: ip,
		UserAgent: ua,
	})
	if err != nil {
		if errors.Is(err, contactservice.ErrEmptyFields) {
			return renderResult("", contactRequiredBanner)
		}
		log.Error("failed to store contact submission", sl.Err(err))
		return renderResult("", contactFailureBanner)
	}

	return renderResult(contactSuccessBanner, "")
}
