package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"lifestream/internal/domain/models"
	"lifestream/internal/storage"
)

const categoryTable = "posts_category"

var categoryColumns = []string{
	"id", "name", "slug", "description", "parent_id", "display_order",
	"is_active", "created_at", "updated_at",
}

type CategoryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func categoryScanTargets(c *models.Category) []interface{} {
	return []interface{}{
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.ParentID,
		&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	}
}

func (r *CategoryRepo) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const op = "repository.category_repository.FindBySlug"
	return r.findOne(ctx, op, sq.Eq{"slug": slug, "is_active": true})
}

func (r *CategoryRepo) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	const op = "repository.category_repository.FindByID"
	return r.findOne(ctx, op, sq.Eq{"id": id, "is_active": true})
}

func (r *CategoryRepo) findOne(ctx context.Context, op string, where sq.Eq) (*models.Category, error) {
	query, args, err := r.sb.Select(categoryColumns...).
		From(categoryTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var category models.Category
	err = r.db.QueryRow(ctx, query, args...).Scan(categoryScanTargets(&category)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &category, nil
}

// ListRoot returns the active top-level categories in display order. Only
// root-level traversal of the category tree is used anywhere.
func (r *CategoryRepo) ListRoot(ctx context.Context) ([]models.Category, error) {
	const op = "repository.category_repository.ListRoot"

	query, args, err := r.sb.Select(categoryColumns...).
		From(categoryTable).
		Where(sq.Eq{"parent_id": nil, "is_active": true}).
		OrderBy("display_order", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryCategories(ctx, op, query, args)
}

func (r *CategoryRepo) queryCategories(ctx context.Context, op, query string, args []interface{}) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(categoryScanTargets(&category)...); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}
