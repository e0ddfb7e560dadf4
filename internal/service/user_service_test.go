package service

import (
	"context"
	"testing"

	"postboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByMobileNumber(ctx context.Context, mobile string) (*models.User, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := NewUserService(new(MockUserRepository))
	ctx := context.Background()

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{MobileNumber: "111", Password: "p"}},
		{"missing mobile", RegisterInput{Name: "A", Password: "p"}},
		{"missing password", RegisterInput{Name: "A", MobileNumber: "111"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Register(ctx, tt.in)
			assert.Nil(t, user)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	ctx := context.Background()

	var created *models.User
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
	}).Return(nil)

	user, err := svc.Register(ctx, RegisterInput{
		Name:         "A",
		MobileNumber: "111",
		Address:      "somewhere",
		Password:     "p",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "A", user.Name)
	assert.Equal(t, 0, user.PostCount)
	assert.NotEqual(t, "p", created.Password, "password must never be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("p")))
}

func TestUserService_Register_Conflict(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("Create", mock.Anything, mock.Anything).
		Return(models.NewConflictError("already registered"))

	user, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", MobileNumber: "111", Password: "p",
	})
	assert.Nil(t, user)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("p"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: 1, Name: "A", MobileNumber: "111", Password: string(hashed)}

	tests := []struct {
		name        string
		mobile      string
		password    string
		mockSetup   func(repo *MockUserRepository)
		wantCode    string
		wantMessage string
	}{
		{
			name: "missing fields", mobile: "", password: "p",
			mockSetup: func(repo *MockUserRepository) {},
			wantCode:  "VALIDATION_ERROR",
		},
		{
			name: "user not found", mobile: "999", password: "p",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByMobileNumber", mock.Anything, "999").Return(nil, nil)
			},
			wantCode:    "UNAUTHORIZED",
			wantMessage: "user not found",
		},
		{
			name: "wrong password", mobile: "111", password: "wrong",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByMobileNumber", mock.Anything, "111").Return(stored, nil)
			},
			wantCode:    "UNAUTHORIZED",
			wantMessage: "invalid password",
		},
		{
			name: "success", mobile: "111", password: "p",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByMobileNumber", mock.Anything, "111").Return(stored, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.mockSetup(repo)
			svc := NewUserService(repo)

			user, err := svc.Login(context.Background(), tt.mobile, tt.password)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, uint(1), user.ID)
				return
			}

			assert.Nil(t, user)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, appErr.Message)
			}
		})
	}
}
