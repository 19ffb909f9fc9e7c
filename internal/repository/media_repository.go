package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"lifestream/internal/domain/models"
)

const (
	mediaLibraryTable = "posts_medialibrary"
	postMediaTable    = "posts_postmedia"
)

// "order" is reserved in Postgres and has to stay quoted.
var postMediaColumns = []string{
	"pm.id", "pm.post_id", `pm."order"`, "pm.custom_alt_text",
	"ml.file", "ml.media_type", "ml.original_filename", "ml.width", "ml.height",
}

type MediaRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewMediaRepository(db *pgxpool.Pool) *MediaRepo {
	return &MediaRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func postMediaScanTargets(m *models.PostMediaItem) []interface{} {
	return []interface{}{
		&m.ID, &m.PostID, &m.DisplayOrder, &m.CustomAltText,
		&m.File, &m.MediaType, &m.OriginalFilename, &m.Width, &m.Height,
	}
}

// ListForPost returns every media item linked to a post in display order.
func (r *MediaRepo) ListForPost(ctx context.Context, postID int64) ([]models.PostMediaItem, error) {
	const op = "repository.media_repository.ListForPost"

	query, args, err := r.sb.Select(postMediaColumns...).
		From(postMediaTable + " pm").
		Join(mediaLibraryTable + " ml ON pm.library_item_id = ml.id").
		Where(sq.Eq{"pm.post_id": postID}).
		OrderBy(`pm."order"`, "pm.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.PostMediaItem
	for rows.Next() {
		var item models.PostMediaItem
		if err := rows.Scan(postMediaScanTargets(&item)...); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// FeaturedForPost returns the post's lowest-display-order media item, or nil
// when the post has no media. A missing thumbnail is normal, not an error.
func (r *MediaRepo) FeaturedForPost(ctx context.Context, postID int64) (*models.PostMediaItem, error) {
	const op = "repository.media_repository.FeaturedForPost"

	query, args, err := r.sb.Select(postMediaColumns...).
		From(postMediaTable + " pm").
		Join(mediaLibraryTable + " ml ON pm.library_item_id = ml.id").
		Where(sq.Eq{"pm.post_id": postID}).
		OrderBy(`pm."order"`).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var item models.PostMediaItem
	err = r.db.QueryRow(ctx, query, args...).Scan(postMediaScanTargets(&item)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}
