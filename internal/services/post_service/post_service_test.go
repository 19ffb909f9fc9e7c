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
	"lifestream/internal/storage"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListVisible(ctx context.Context, visibilities []string, limit, offset uint64) ([]models.Post, error) {
	args := m.Called(ctx, visibilities, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByCategory(ctx context.Context, categoryID int64, visibilities []string, limit, offset uint64) ([]models.Post, error) {
	args := m.Called(ctx, categoryID, visibilities, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByTag(ctx context.Context, tagID int64, visibilities []string, limit, offset uint64) ([]models.Post, error) {
	args := m.Called(ctx, tagID, visibilities, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Search(ctx context.Context, term string, visibilities []string, limit, offset uint64) ([]models.Post, error) {
	args := m.Called(ctx, term, visibilities, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) ListAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) ListForPost(ctx context.Context, postID int64) ([]models.Tag, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) ListForPost(ctx context.Context, postID int64) ([]models.PostMediaItem, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostMediaItem), args.Error(1)
}

func (m *MockMediaRepository) FeaturedForPost(ctx context.Context, postID int64) (*models.PostMediaItem, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostMediaItem), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListRoot(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func newPostService(posts *MockPostRepository, tags *MockTagRepository, media *MockMediaRepository, categories *MockCategoryRepository) *PostService {
	return NewPostService(slog.Default(), posts, tags, media, categories)
}

func TestPostService_Detail_AggregatesMediaTagsCategory(t *testing.T) {
	ctx := context.Background()

	categoryID := int64(5)
	post := &models.Post{
		ID:         1,
		Body:       "a day at the lake",
		Visibility: "PUBLIC",
		CategoryID: &categoryID,
		CreatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	media := []models.PostMediaItem{
		{ID: 10, PostID: 1, DisplayOrder: 0, File: "photos/lake.jpg"},
		{ID: 11, PostID: 1, DisplayOrder: 1, File: "photos/dock.jpg"},
	}
	tags := []models.Tag{{ID: 2, Name: "summer", Slug: "summer"}}
	category := &models.Category{ID: 5, Name: "Travel", Slug: "travel"}

	mockPosts := new(MockPostRepository)
	mockTags := new(MockTagRepository)
	mockMedia := new(MockMediaRepository)
	mockCategories := new(MockCategoryRepository)

	mockPosts.On("FindByID", ctx, int64(1)).Return(post, nil).Once()
	mockMedia.On("ListForPost", ctx, int64(1)).Return(media, nil).Once()
	mockTags.On("ListForPost", ctx, int64(1)).Return(tags, nil).Once()
	mockCategories.On("FindByID", ctx, int64(5)).Return(category, nil).Once()

	svc := newPostService(mockPosts, mockTags, mockMedia, mockCategories)

	detail, err := svc.Detail(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, *post, detail.Post)
	assert.Equal(t, media, detail.Media)
	assert.Equal(t, tags, detail.Tags)
	assert.Equal(t, category, detail.Category)
	mockPosts.AssertExpectations(t)
	mockMedia.AssertExpectations(t)
	mockTags.AssertExpectations(t)
	mockCategories.AssertExpectations(t)
}

func TestPostService_Detail_NotFound(t *testing.T) {
	ctx := context.Background()

	mockPosts := new(MockPostRepository)
	mockTags := new(MockTagRepository)
	mockMedia := new(MockMediaRepository)
	mockCategories := new(MockCategoryRepository)

	mockPosts.On("FindByID", ctx, int64(99999999)).
		Return(nil, storage.ErrPostNotFound).Once()

	svc := newPostService(mockPosts, mockTags, mockMedia, mockCategories)

	detail, err := svc.Detail(ctx, 99999999)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
	mockMedia.AssertNotCalled(t, "ListForPost", mock.Anything, mock.Anything)
}

func TestPostService_Detail_MissingCategoryLeavesPostUncategorized(t *testing.T) {
	ctx := context.Background()

	categoryID := int64(8)
	post := &models.Post{ID: 2, Body: "body", Visibility: "PUBLIC", CategoryID: &categoryID}

	mockPosts := new(MockPostRepository)
	mockTags := new(MockTagRepository)
	mockMedia := new(MockMediaRepository)
	mockCategories := new(MockCategoryRepository)

	mockPosts.On("FindByID", ctx, int64(2)).Return(post, nil).Once()
	mockMedia.On("ListForPost", ctx, int64(2)).Return([]models.PostMediaItem{}, nil).Once()
	mockTags.On("ListForPost", ctx, int64(2)).Return([]models.Tag{}, nil).Once()
	mockCategories.On("FindByID", ctx, int64(8)).Return(nil, storage.ErrNotFound).Once()

	svc := newPostService(mockPosts, mockTags, mockMedia, mockCategories)

	detail, err := svc.Detail(ctx, 2)
	require.NoError(t, err)

	assert.Nil(t, detail.Category)
}

func TestPostService_Detail_UncategorizedPostSkipsCategoryLookup(t *testing.T) {
	ctx := context.Background()

	post := &models.Post{ID: 3, Body: "body", Visibility: "PUBLIC"}

	mockPosts := new(MockPostRepository)
	mockTags := new(MockTagRepository)
	mockMedia := new(MockMediaRepository)
	mockCategories := new(MockCategoryRepository)

	mockPosts.On("FindByID", ctx, int64(3)).Return(post, nil).Once()
	mockMedia.On("ListForPost", ctx, int64(3)).Return([]models.PostMediaItem{}, nil).Once()
	mockTags.On("ListForPost", ctx, int64(3)).Return([]models.Tag{}, nil).Once()

	svc := newPostService(mockPosts, mockTags, mockMedia, mockCategories)

	detail, err := svc.Detail(ctx, 3)
	require.NoError(t, err)

	assert.Nil(t, detail.Category)
	mockCategories.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestPostService_Detail_MediaFailurePropagates(t *testing.T) {
	ctx := context.Background()

	post := &models.Post{ID: 4, Body: "body", Visibility: "PUBLIC"}

	mockPosts := new(MockPostRepository)
	mockTags := new(MockTagRepository)
	mockMedia := new(MockMediaRepository)
	mockCategories := new(MockCategoryRepository)

	mockPosts.On("FindByID", ctx, int64(4)).Return(post, nil).Once()
	mockMedia.On("ListForPost", ctx, int64(4)).Return(nil, errors.New("query failed")).Once()

	svc := newPostService(mockPosts, mockTags, mockMedia, mockCategories)

	detail, err := svc.Detail(ctx, 4)

	assert.Nil(t, detail)
	assert.Error(t, err)
}
