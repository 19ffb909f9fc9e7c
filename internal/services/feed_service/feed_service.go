package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lifestream/internal/domain/models"
	"lifestream/internal/privacy"
	"lifestream/internal/repository"
	"lifestream/internal/storage"
)

// PageSize is the fixed listing size; every feed variant uses it.
const PageSize = 10

type FeedService struct {
	log        *slog.Logger
	posts      repository.PostRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	media      repository.MediaRepository
}

func NewFeedService(
	log *slog.Logger,
	posts repository.PostRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	media repository.MediaRepository,
) *FeedService {
	return &FeedService{
		log:        log,
		posts:      posts,
		categories: categories,
		tags:       tags,
		media:      media,
	}
}

// Home returns one page of the unscoped feed for a viewer with the given
// tier. The repository is asked for one row beyond the page size; the extra
// row only decides HasNextPage and is never returned.
func (s *FeedService) Home(ctx context.Context, tier string, page int64) (*models.FeedPage, error) {
	const op = "feed_service.Home"

	page = normalizePage(page)

	posts, err := s.posts.ListVisible(ctx, privacy.AllowedVisibilities(tier), PageSize+1, pageOffset(page))
	if err != nil {
		s.log.Error("failed to list feed", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.buildPage(ctx, op, posts, page, nil)
}

// ByCategorySlug scopes the feed to a category resolved by slug. An unknown
// or inactive slug yields an empty feed, not an error.
func (s *FeedService) ByCategorySlug(ctx context.Context, tier, slug string, page int64) (*models.FeedPage, error) {
	const op = "feed_service.ByCategorySlug"

	page = normalizePage(page)

	category, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return emptyPage(page), nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	posts, err := s.posts.ListByCategory(ctx, category.ID, privacy.AllowedVisibilities(tier), PageSize+1, pageOffset(page))
	if err != nil {
		s.log.Error("failed to list category feed", slog.String("op", op), slog.String("slug", slug), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.buildPage(ctx, op, posts, page, nil)
}

// ByTagSlug scopes the feed to a tag resolved by slug, with the same
// unknown-slug-to-empty-feed rule as categories.
func (s *FeedService) ByTagSlug(ctx context.Context, tier, slug string, page int64) (*models.FeedPage, error) {
	const op = "feed_service.ByTagSlug"

	page = normalizePage(page)

	tag, err := s.tags.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return emptyPage(page), nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	posts, err := s.posts.ListByTag(ctx, tag.ID, privacy.AllowedVisibilities(tier), PageSize+1, pageOffset(page))
	if err != nil {
		s.log.Error("failed to list tag feed", slog.String("op", op), slog.String("slug", slug), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.buildPage(ctx, op, posts, page, tag)
}

// Search returns a page of posts whose title or body contains the term,
// case-insensitively. Search ignores pinning and orders by recency alone.
func (s *FeedService) Search(ctx context.Context, tier, term string, page int64) (*models.FeedPage, error) {
	const op = "feed_service.Search"

	page = normalizePage(page)

	posts, err := s.posts.Search(ctx, term, privacy.AllowedVisibilities(tier), PageSize+1, pageOffset(page))
	if err != nil {
		s.log.Error("failed to search posts", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.buildPage(ctx, op, posts, page, nil)
}

// Taxonomy returns the root categories and every active tag, in the order
// the browse view lists them.
func (s *FeedService) Taxonomy(ctx context.Context) ([]models.Category, []models.Tag, error) {
	const op = "feed_service.Taxonomy"

	categories, err := s.categories.ListRoot(ctx)
	if err != nil {
		s.log.Error("failed to list categories", slog.String("op", op), slog.Any("err", err))
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	tags, err := s.tags.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list tags", slog.String("op", op), slog.Any("err", err))
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, tags, nil
}

// Enrich attaches each post's featured media item and full tag list. This is
// one featured-media query and one tag query per post; at a page size of ten
// that is cheap, and keeping the fan-out behind this one method means a
// batched IN-list variant can replace it without touching any call site.
func (s *FeedService) Enrich(ctx context.Context, posts []models.Post) ([]models.FeedPost, error) {
	const op = "feed_service.Enrich"

	enriched := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		featured, err := s.media.FeaturedForPost(ctx, post.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		tags, err := s.tags.ListForPost(ctx, post.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		enriched = append(enriched, models.FeedPost{
			ID:             post.ID,
			Title:          post.Title,
			Body:           post.Body,
			Location:       post.Location,
			SourcePlatform: post.SourcePlatform,
			CreatedAt:      post.CreatedAt,
			FeaturedMedia:  featured,
			Tags:           tags,
		})
	}

	return enriched, nil
}

func (s *FeedService) buildPage(ctx context.Context, op string, posts []models.Post, page int64, tag *models.Tag) (*models.FeedPage, error) {
	hasNext := len(posts) > PageSize
	if hasNext {
		posts = posts[:PageSize]
	}

	enriched, err := s.Enrich(ctx, posts)
	if err != nil {
		s.log.Error("failed to enrich posts", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.FeedPage{
		Posts:       enriched,
		HasNextPage: hasNext,
		NextPage:    page + 1,
		Tag:         tag,
	}, nil
}

func normalizePage(page int64) int64 {
	if page < 1 {
		return 1
	}
	return page
}

func pageOffset(page int64) uint64 {
	return uint64(page-1) * PageSize
}

func emptyPage(page int64) *models.FeedPage {
	return &models.FeedPage{
		Posts:       []models.FeedPost{},
		HasNextPage: false,
		NextPage:    page + 1,
	}
}
