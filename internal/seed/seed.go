// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"

	"postboard/internal/models"
	"postboard/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Users        int
	PostsPerUser int
	// Password assigned to every generated account so demo logins work.
	Password string
}

// Factory builds domain entities and persists them through the repositories,
// so seeded posts go through the same transactional counter path as real ones.
type Factory struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		userRepo: repository.NewUserRepository(db),
		postRepo: repository.NewPostRepository(db),
	}
}

// CreateUser persists one fake user with the given password.
func (f *Factory) CreateUser(ctx context.Context, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         gofakeit.Name(),
		MobileNumber: gofakeit.Phone(),
		Address:      gofakeit.Address().Address,
		Password:     string(hashed),
	}
	if err := f.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists one fake post for the user, incrementing post_count
// through the repository transaction.
func (f *Factory) CreatePost(ctx context.Context, user *models.User) (*models.Post, error) {
	images := models.ImageList{}
	for i := 0; i < gofakeit.Number(1, 4); i++ {
		images = append(images, fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()))
	}

	post := &models.Post{
		Title:       gofakeit.Sentence(5),
		Description: gofakeit.Paragraph(1, 3, 8, " "),
		UserID:      user.ID,
		Images:      images,
	}
	if err := f.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Run populates the database per the options.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	if opts.Users <= 0 {
		opts.Users = 5
	}
	if opts.PostsPerUser < 0 {
		opts.PostsPerUser = 0
	}
	if opts.Password == "" {
		opts.Password = "password123"
	}

	f := NewFactory(db)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser(ctx, opts.Password)
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		for j := 0; j < opts.PostsPerUser; j++ {
			if _, err := f.CreatePost(ctx, user); err != nil {
				return fmt.Errorf("seed post %d for user %d: %w", j, user.ID, err)
			}
		}
	}
	return nil
}
