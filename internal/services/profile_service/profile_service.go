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

type ProfileService struct {
	log      *slog.Logger
	profiles repository.ProfileRepository
}

func NewProfileService(log *slog.Logger, profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{log: log, profiles: profiles}
}

// ByUserID resolves the profile backing a session's user id. A user without
// a profile row is treated as an anonymous viewer, not an error.
func (s *ProfileService) ByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	const op = "profile_service.ByUserID"

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			return nil, nil
		}
		s.log.Error("failed to fetch profile", slog.String("op", op), slog.Int64("user_id", userID), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}
