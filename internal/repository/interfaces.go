package repository

import (
	"context"

	"lifestream/internal/domain/models"
)

type PostRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	ListVisible(ctx context.Context, visibilities []string, limit, offset uint64) ([]models.Post, error)
	ListByCategory(ctx context.Context, categoryID int64, visibilities []string, limit, offset uint64) ([]models.Post, error)
	ListByTag(ctx context.Context, tagID int64, visibilities []string, limit, offset uint64) ([]models.Post, error)
	Search(ctx context.Context, term string, visibilities []string, limit, offset uint64) ([]models.Post, error)
}

type CategoryRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	ListRoot(ctx context.Context) ([]models.Category, error)
}

type TagRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Tag, error)
	ListAll(ctx context.Context) ([]models.Tag, error)
	ListForPost(ctx context.Context, postID int64) ([]models.Tag, error)
}

type PageRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Page, error)
	ListNav(ctx context.Context) ([]models.Page, error)
}

type MediaRepository interface {
	ListForPost(ctx context.Context, postID int64) ([]models.PostMediaItem, error)
	FeaturedForPost(ctx context.Context, postID int64) (*models.PostMediaItem, error)
}

type ContactRepository interface {
	Create(ctx context.Context, sub models.NewContactSubmission) (*models.ContactSubmission, error)
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}
