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

const (
	postTable     = "posts_post"
	postTagsTable = "posts_post_tags"
)

var postColumns = []string{
	"id", "title", "body", "location", "author_id", "visibility",
	"is_draft", "is_pinned", "is_archived", "is_deleted", "category_id",
	"source_platform", "like_count", "comment_count", "share_count",
	"created_at", "updated_at",
}

type PostRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPostRepository(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func postScanTargets(p *models.Post) []interface{} {
	return []interface{}{
		&p.ID, &p.Title, &p.Body, &p.Location, &p.AuthorID, &p.Visibility,
		&p.IsDraft, &p.IsPinned, &p.IsArchived, &p.IsDeleted, &p.CategoryID,
		&p.SourcePlatform, &p.LikeCount, &p.CommentCount, &p.ShareCount,
		&p.CreatedAt, &p.UpdatedAt,
	}
}

// FindByID returns a post regardless of its visibility label: drafts and
// deleted posts are excluded, but the tier filter is deliberately not applied
// here, so direct links reach non-public posts. Listings are the only tier
// gate.
func (r *PostRepo) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	const op = "repository.post_repository.FindByID"

	query, args, err := r.sb.Select(postColumns...).
		From(postTable).
		Where(sq.Eq{"id": id, "is_draft": false, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var post models.Post
	err = r.db.QueryRow(ctx, query, args...).Scan(postScanTargets(&post)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &post, nil
}

// ListVisible returns the unscoped feed window: non-draft, non-deleted posts
// whose visibility is in the caller's allowed set, pinned first, newest first.
func (r *PostRepo) ListVisible(ctx context.Context, visibilities []string, limit, offset uint64) ([]models.Post, error) {
	const op = "repository.post_repository.ListVisible"

	query, args, err := r.sb.Select(postColumns...).
		From(postTable).
		Where(sq.Eq{"is_draft": false, "is_deleted": false}).
		Where(sq.Eq{"visibility": visibilities}).
		OrderBy("is_pinned DESC", "created_at DESC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryPosts(ctx, op, query, args)
}

func (r *PostRepo) ListByCategory(ctx context.Context, categoryID int64, visibilities []string, limit, offset uint64) ([]models.Post, error) {
	const op = "repository.post_repository.ListByCategory"

	query, args, err := r.sb.Select(postColumns...).
		From(postTable).
		Where(sq.Eq{"is_draft": false, "is_deleted": false, "category_id": categoryID}).
		Where(sq.Eq{"visibility": visibilities}).
		OrderBy("is_pinned DESC", "created_at DESC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryPosts(ctx, op, query, args)
}

func (r *PostRepo) ListByTag(ctx context.Context, tagID int64, visibilities []string, limit, offset uint64) ([]models.Post, error) {
	const op = "repository.post_repository.ListByTag"

	cols := make([]string, len(postColumns))
	for i, c := range postColumns {
		cols[i] = "p." + c
	}

	query, args, err := r.sb.Select(cols...).
		From(postTable + " p").
		Join(postTagsTable + " pt ON p.id = pt.post_id").
		Where(sq.Eq{"p.is_draft": false, "p.is_deleted": false, "pt.tag_id": tagID}).
		Where(sq.Eq{"p.visibility": visibilities}).
		OrderBy("p.is_pinned DESC", "p.created_at DESC", "p.id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryPosts(ctx, op, query, args)
}

// Search matches the term case-insensitively against title or body. Search
// results are ordered by recency only; pinning carries no weight here.
func (r *PostRepo) Search(ctx context.Context, term string, visibilities []string, limit, offset uint64) ([]models.Post, error) {
	const op = "repository.post_repository.Search"

	pattern := "%" + term + "%"

	query, args, err := r.sb.Select(postColumns...).
		From(postTable).
		Where(sq.Eq{"is_draft": false, "is_deleted": false}).
		Where(sq.Eq{"visibility": visibilities}).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"body": pattern},
		}).
		OrderBy("created_at DESC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryPosts(ctx, op, query, args)
}

func (r *PostRepo) queryPosts(ctx context.Context, op, query string, args []interface{}) ([]models.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(postScanTargets(&post)...); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}
