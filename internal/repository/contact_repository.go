package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"

	"lifestream/internal/domain/models"
)

const contactTable = "posts_contactsubmission"

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a visitor submission. Status and both timestamps are
// server-stamped; callers never choose them.
func (r *ContactRepo) Create(ctx context.Context, sub models.NewContactSubmission) (*models.ContactSubmission, error) {
	const op = "repository.contact_repository.Create"

	query, args, err := r.sb.Insert(contactTable).
		Columns("user_id", "name", "email", "message", "status", "ip_address", "user_agent", "created_at", "updated_at").
		Values(sub.UserID, sub.Name, sub.Email, sub.Message, models.ContactSubmissionStatusNew, sub.IPAddress, sub.UserAgent, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING id, user_id, name, email, oauth_provider, message, status, ip_address, user_agent, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var created models.ContactSubmission
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&created.ID, &created.UserID, &created.Name, &created.Email,
		&created.OAuthProvider, &created.Message, &created.Status,
		&created.IPAddress, &created.UserAgent, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &created, nil
}
