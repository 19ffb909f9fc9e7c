package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lifestream/internal/domain/models"
	"lifestream/internal/repository"
	"lifestream/internal/storage"
)

type PostService struct {
	log        *slog.Logger
	posts      repository.PostRepository
	tags       repository.TagRepository
	media      repository.MediaRepository
	categories repository.CategoryRepository
}

func NewPostService(
	log *slog.Logger,
	posts repository.PostRepository,
	tags repository.TagRepository,
	media repository.MediaRepository,
	categories repository.CategoryRepository,
) *PostService {
	return &PostService{
		log:        log,
		posts:      posts,
		tags:       tags,
		media:      media,
		categories: categories,
	}
}

// Detail fetches a post with its full ordered media list, tag list, and
// resolved category. Unlike the feed, detail does not filter by viewer tier;
// see PostRepo.FindByID.
func (s *PostService) Detail(ctx context.Context, id int64) (*models.PostDetail, error) {
	const op = "post_service.Detail"

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrPostNotFound) {
			s.log.Error("failed to fetch post", slog.String("op", op), slog.Int64("post_id", id), slog.Any("err", err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	media, err := s.media.ListForPost(ctx, post.ID)
	if err != nil {
		s.log.Error("failed to fetch post media", slog.String("op", op), slog.Int64("post_id", id), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tags, err := s.tags.ListForPost(ctx, post.ID)
	if err != nil {
		s.log.Error("failed to fetch post tags", slog.String("op", op), slog.Int64("post_id", id), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var category *models.Category
	if post.CategoryID != nil {
		category, err = s.categories.FindByID(ctx, *post.CategoryID)
		if err != nil {
			// An inactive or vanished category leaves the post uncategorized.
			if !errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			category = nil
		}
	}

	return &models.PostDetail{
		Post:     *post,
		Media:    media,
		Tags:     tags,
		Category: category,
	}, nil
}
