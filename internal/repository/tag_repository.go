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

const tagTable = "posts_tag"

var tagColumns = []string{"id", "name", "slug", "is_active", "description", "created_at"}

type TagRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTagRepository(db *pgxpool.Pool) *TagRepo {
	return &TagRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func tagScanTargets(t *models.Tag) []interface{} {
	return []interface{}{&t.ID, &t.Name, &t.Slug, &t.IsActive, &t.Description, &t.CreatedAt}
}

func (r *TagRepo) FindBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	const op = "repository.tag_repository.FindBySlug"
	return r.findOne(ctx, op, sq.Eq{"slug": slug, "is_active": true})
}

func (r *TagRepo) findOne(ctx context.Context, op string, where sq.Eq) (*models.Tag, error) {
	query, args, err := r.sb.Select(tagColumns...).
		From(tagTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var tag models.Tag
	err = r.db.QueryRow(ctx, query, args...).Scan(tagScanTargets(&tag)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &tag, nil
}

func (r *TagRepo) ListAll(ctx context.Context) ([]models.Tag, error) {
	const op = "repository.tag_repository.ListAll"

	query, args, err := r.sb.Select(tagColumns...).
		From(tagTable).
		Where(sq.Eq{"is_active": true}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryTags(ctx, op, query, args)
}

// ListForPost returns a post's active tags, alphabetical by name.
func (r *TagRepo) ListForPost(ctx context.Context, postID int64) ([]models.Tag, error) {
	const op = "repository.tag_repository.ListForPost"

	query, args, err := r.sb.Select("t.id", "t.name", "t.slug", "t.is_active", "t.description", "t.created_at").
		From(tagTable + " t").
		Join(postTagsTable + " pt ON t.id = pt.tag_id").
		Where(sq.Eq{"pt.post_id": postID, "t.is_active": true}).
		OrderBy("t.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryTags(ctx, op, query, args)
}

func (r *TagRepo) queryTags(ctx context.Context, op, query string, args []interface{}) ([]models.Tag, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(tagScanTargets(&tag)...); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}
