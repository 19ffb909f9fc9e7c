package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"lifestream/internal/domain/models"
	"lifestream/internal/privacy"
	"lifestream/internal/storage"
)

const pageTable = "posts_page"

var pageColumns = []string{
	"id", "title", "slug", "body", "parent_id", "template", "show_in_nav",
	"display_order", "show_posts_from_category_id", "show_posts_with_tag_id",
	"posts_per_page", "is_published", "visibility", "author_id",
	"created_at", "updated_at",
}

type PageRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPageRepository(db *pgxpool.Pool) *PageRepo {
	return &PageRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func pageScanTargets(p *models.Page) []interface{} {
	return []interface{}{
		&p.ID, &p.Title, &p.Slug, &p.Body, &p.ParentID, &p.Template,
		&p.ShowInNav, &p.DisplayOrder, &p.ShowPostsFromCategoryID,
		&p.ShowPostsWithTagID, &p.PostsPerPage, &p.IsPublished,
		&p.Visibility, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
	}
}

func (r *PageRepo) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	const op = "repository.page_repository.FindBySlug"

	query, args, err := r.sb.Select(pageColumns...).
		From(pageTable).
		Where(sq.Eq{"slug": slug, "is_published": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var page models.Page
	err = r.db.QueryRow(ctx, query, args...).Scan(pageScanTargets(&page)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrPageNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &page, nil
}

// ListNav returns the pages shown in site navigation: published, nav-flagged,
// public, top-level, ordered by display order then title.
func (r *PageRepo) ListNav(ctx context.Context) ([]models.Page, error) {
	const op = "repository.page_repository.ListNav"

	query, args, err := r.sb.Select(pageColumns...).
		From(pageTable).
		Where(sq.Eq{
			"is_published": true,
			"show_in_nav":  true,
			"visibility":   privacy.VisibilityPublic,
			"parent_id":    nil,
		}).
		OrderBy("display_order", "title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		var page models.Page
		if err := rows.Scan(pageScanTargets(&page)...); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pages, nil
}
