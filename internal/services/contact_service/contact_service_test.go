package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lifestream/internal/domain/models"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, submission models.NewContactSubmission) (*models.ContactSubmission, error) {
	args := m.Called(ctx, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactSubmission), args.Error(1)
}

func TestContactService_Submit_EmptyFields(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input ContactInput
	}{
		{
			name:  "blank name",
			input: ContactInput{Name: "   ", Email: "a@b.com", Message: "hi"},
		},
		{
			name:  "blank email",
			input: ContactInput{Name: "Ann", Email: "", Message: "hi"},
		},
		{
			name:  "whitespace-only message",
			input: ContactInput{Name: "Ann", Email: "a@b.com", Message: "\t\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockContactRepository)
			svc := NewContactService(slog.Default(), mockRepo)

			created, err := svc.Submit(ctx, tt.input)

			assert.Nil(t, created)
			assert.ErrorIs(t, err, ErrEmptyFields)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestContactService_Submit_StoresWhatWasTyped(t *testing.T) {
	ctx := context.Background()

	ip := "203.0.113.7"
	ua := "Mozilla/5.0"

	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", ctx, models.NewContactSubmission{
		Name:      "  Ann  ",
		Email:     "ann@example.com",
		Message:   "Hello there",
		IPAddress: &ip,
		UserAgent: &ua,
	}).Return(&models.ContactSubmission{
		ID:        42,
		Name:      "  Ann  ",
		Email:     "ann@example.com",
		Message:   "Hello there",
		Status:    models.ContactSubmissionStatusNew,
		CreatedAt: time.Now(),
	}, nil).Once()

	svc := NewContactService(slog.Default(), mockRepo)

	created, err := svc.Submit(ctx, ContactInput{
		Name:      "  Ann  ",
		Email:     "ann@example.com",
		Message:   "Hello there",
		IPAddress: &ip,
		UserAgent: &ua,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, models.ContactSubmissionStatusNew, created.Status)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Submit_RepositoryFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", ctx, mock.AnythingOfType("models.NewContactSubmission")).
		Return(nil, errors.New("insert failed")).Once()

	svc := NewContactService(slog.Default(), mockRepo)

	created, err := svc.Submit(ctx, ContactInput{Name: "Ann", Email: "a@b.com", Message: "hi"})

	assert.Nil(t, created)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyFields)
}
