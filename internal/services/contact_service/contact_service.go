package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"lifestream/internal/domain/models"
	"lifestream/internal/repository"
)

// ErrEmptyFields is returned when any of name, email, or message is blank
// after trimming. Callers turn it into the form's validation banner.
var ErrEmptyFields = errors.New("all fields are required")

type ContactService struct {
	log  *slog.Logger
	repo repository.ContactRepository
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository) *ContactService {
	return &ContactService{log: log, repo: repo}
}

type ContactInput struct {
	Name      string
	Email     string
	Message   string
	IPAddress *string
	UserAgent *string
}

// Submit validates and stores one visitor message. Validation trims only for
// the emptiness check; the stored values are what the visitor typed.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*models.ContactSubmission, error) {
	const op = "contact_service.Submit"

	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFields)
	}

	created, err := s.repo.Create(ctx, models.NewContactSubmission{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	})
	if err != nil {
		s.log.Error("failed to save contact submission", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("contact submission stored",
		slog.String("op", op),
		slog.Int64("submission_id", created.ID),
	)

	return created, nil
}
