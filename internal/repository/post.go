package repository

import (
	"context"

	"postboard/internal/middleware"
	"postboard/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
//
// Create and Delete adjust the owner's denormalized post_count inside the
// same transaction as the post row mutation; a failure on either side rolls
// back both. The counter is changed with an atomic
// `post_count = post_count ± 1` expression, never read-then-write, so
// concurrent mutations on the same user cannot lose updates.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	UpdateOwned(ctx context.Context, post *models.Post) error
	DeleteOwned(ctx context.Context, postID, ownerID uint) error
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and increments the owner's post_count as one
// transaction.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", post.UserID).
			UpdateColumn("post_count", gorm.Expr("post_count + ?", 1)).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	middleware.PostCountAdjustments.WithLabelValues("create").Inc()
	return nil
}

// UpdateOwned updates title/description/images on the post identified by both
// post ID and owner ID. Ownership is enforced in the query predicate itself;
// zero rows affected means the post is absent or owned by someone else, and
// both collapse to NotFound so a non-owner learns nothing about existence.
func (r *postRepository) UpdateOwned(ctx context.Context, post *models.Post) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ? AND user_id = ?", post.ID, post.UserID).
		Updates(map[string]any{
			"title":       post.Title,
			"description": post.Description,
			"images":      post.Images,
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post")
	}
	return nil
}

// DeleteOwned deletes the post identified by post ID and owner ID and
// decrements the owner's post_count, all in one transaction. A zero-row
// delete aborts before the counter is touched; a counter failure rolls the
// delete back so it is never left half-applied.
func (r *postRepository) DeleteOwned(ctx context.Context, postID, ownerID uint) error {
	notFound := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", postID, ownerID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			notFound = true
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.User{}).
			Where("id = ?", ownerID).
			UpdateColumn("post_count", gorm.Expr("post_count - ?", 1)).Error
	})
	if err != nil {
		if notFound {
			return models.NewNotFoundError("Post")
		}
		return models.NewInternalError(err)
	}
	middleware.PostCountAdjustments.WithLabelValues("delete").Inc()
	return nil
}

// List returns all posts joined with the owner's display name.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Select("posts.*, users.name AS user_name").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListByUser returns one user's posts, newest first.
func (r *postRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
