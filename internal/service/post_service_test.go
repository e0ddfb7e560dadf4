package service

import (
	"context"
	"errors"
	"testing"

	"postboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdateOwned(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteOwned(ctx context.Context, postID, ownerID uint) error {
	args := m.Called(ctx, postID, ownerID)
	return args.Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]models.Post), args.Error(1)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	svc := NewPostService(new(MockPostRepository))
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, Images: []string{"a.png"}})
	assertValidationError(t, err)

	_, err = svc.CreatePost(ctx, CreatePostInput{UserID: 1, Title: "T"})
	assertValidationError(t, err)
}

func TestPostService_CreatePost(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewPostService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		return p.UserID == 7 && p.Title == "T" && len(p.Images) == 2
	})).Return(nil)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:      7,
		Title:       "T",
		Description: "d",
		Images:      []string{"a.png", "b.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ImageList{"a.png", "b.png"}, post.Images)
	repo.AssertExpectations(t)
}

func TestPostService_UpdatePost_Validation(t *testing.T) {
	svc := NewPostService(new(MockPostRepository))
	ctx := context.Background()

	assertValidationError(t, svc.UpdatePost(ctx, UpdatePostInput{UserID: 1, PostID: 2, Images: []string{"a.png"}}))
	assertValidationError(t, svc.UpdatePost(ctx, UpdatePostInput{UserID: 1, PostID: 2, Title: "T"}))
}

func TestPostService_UpdatePost_PropagatesNotFound(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewPostService(repo)

	repo.On("UpdateOwned", mock.Anything, mock.Anything).
		Return(models.NewNotFoundError("Post"))

	err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID: 1, PostID: 2, Title: "T", Images: []string{"a.png"},
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostService_DeletePost(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewPostService(repo)

	repo.On("DeleteOwned", mock.Anything, uint(2), uint(1)).Return(nil)
	require.NoError(t, svc.DeletePost(context.Background(), 2, 1))

	repo.On("DeleteOwned", mock.Anything, uint(3), uint(1)).
		Return(models.NewInternalError(errors.New("disk on fire")))
	err := svc.DeletePost(context.Background(), 3, 1)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	repo.AssertExpectations(t)
}

func TestPostService_ListPosts(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewPostService(repo)

	repo.On("List", mock.Anything, 20, 0).Return([]models.Post{
		{ID: 1, Title: "T", UserName: "Ada"},
	}, nil)

	posts, err := svc.ListPosts(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Ada", posts[0].UserName)
}
