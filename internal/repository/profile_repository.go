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

const profileTable = "accounts_profile"

type ProfileRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProfileRepo) FindByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	const op = "repository.profile_repository.FindByUserID"

	query, args, err := r.sb.Select(
		"id", "user_id", "tier", "bio", "location", "full_name", "nickname",
		"created_at", "updated_at",
	).
		From(profileTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var profile models.Profile
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&profile.ID, &profile.UserID, &profile.Tier, &profile.Bio,
		&profile.Location, &profile.FullName, &profile.Nickname,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrProfileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &profile, nil
}
