package service

import (
	"context"

	"postboard/internal/cache"
	"postboard/internal/models"
	"postboard/internal/repository"
)

// PostService orchestrates the post lifecycle: every create and delete keeps
// the owner's post_count in step via the repository's transactional
// operations, and drops any cached listings afterwards.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	UserID      uint
	Title       string
	Description string
	Images      []string
}

// UpdatePostInput carries the fields accepted when updating a post.
type UpdatePostInput struct {
	UserID      uint
	PostID      uint
	Title       string
	Description string
	Images      []string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates the input and inserts the post together with the
// owner's counter increment.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Images) == 0 {
		return nil, models.NewValidationError("At least one image is required")
	}

	post := &models.Post{
		Title:       in.Title,
		Description: in.Description,
		UserID:      in.UserID,
		Images:      models.ImageList(in.Images),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidatePosts(ctx)
	return post, nil
}

// UpdatePost updates the caller's post. Title and images stay required on
// update; a missing or foreign post surfaces as NotFound.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) error {
	if in.Title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(in.Images) == 0 {
		return models.NewValidationError("At least one image is required")
	}

	post := &models.Post{
		ID:          in.PostID,
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Images:      models.ImageList(in.Images),
	}
	if err := s.postRepo.UpdateOwned(ctx, post); err != nil {
		return err
	}

	cache.InvalidatePosts(ctx)
	return nil
}

// DeletePost removes the caller's post and decrements the owner's counter.
func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	if err := s.postRepo.DeleteOwned(ctx, postID, userID); err != nil {
		return err
	}

	cache.InvalidatePosts(ctx)
	return nil
}

// ListPosts returns all posts with the owner name joined in, cache-aside.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := cache.Aside(ctx, cache.PostListKey(limit, offset), &posts, cache.PostListTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.List(ctx, limit, offset)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListUserPosts returns one user's posts, cache-aside.
func (s *PostService) ListUserPosts(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := cache.Aside(ctx, cache.UserPostsKey(userID, limit, offset), &posts, cache.PostListTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.ListByUser(ctx, userID, limit, offset)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}
