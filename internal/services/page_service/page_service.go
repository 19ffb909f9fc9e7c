package services

import (
	"context"
	"fmt"
	"log/slog"

	"lifestream/internal/domain/models"
	"lifestream/internal/repository"
)

type PageService struct {
	log   *slog.Logger
	pages repository.PageRepository
}

func NewPageService(log *slog.Logger, pages repository.PageRepository) *PageService {
	return &PageService{
		log:   log,
		pages: pages,
	}
}

// NavPages returns the pages every view shows in site navigation.
func (s *PageService) NavPages(ctx context.Context) ([]models.Page, error) {
	const op = "page_service.NavPages"

	pages, err := s.pages.ListNav(ctx)
	if err != nil {
		s.log.Error("failed to list nav pages", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pages, nil
}

// Detail resolves a published page by slug. The show_posts_from_category_id
// and show_posts_with_tag_id columns are mapped onto the model but not wired
// to any post fetch; the pull list is always empty.
// TODO: wire the category/tag pull columns into a post listing.
func (s *PageService) Detail(ctx context.Context, slug string) (*models.PageDetail, error) {
	const op = "page_service.Detail"

	page, err := s.pages.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.PageDetail{
		Page:  *page,
		Posts: []models.FeedPost{},
	}, nil
}
