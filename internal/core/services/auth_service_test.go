package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockStreakClaimer struct {
	mock.Mock
}

func (m *MockStreakClaimer) ClaimAnonymousRecord(ctx context.Context, anonID, userID string) error {
	return m.Called(ctx, anonID, userID).Error(0)
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("Success: Should register a valid user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(mockRepo, nil)
		ctx := context.Background()

		input := RegisterInput{
			Email:    "test_success@awa.app",
			Password: "StrongPassword123!",
			Name:     "Amina",
		}

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := service.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, input.Email, user.Email)
		assert.Equal(t, "Amina", user.Name)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.PasswordHash)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Success: Should claim anonymous streak on register", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		claimer := new(MockStreakClaimer)
		service := NewAuthService(mockRepo, claimer)
		ctx := context.Background()

		input := RegisterInput{
			Email:       "claimer@awa.app",
			Password:    "StrongPassword123!",
			AnonymousID: "user_anon-42",
		}

		mockRepo.On("Create", ctx, mock.Anything).Return(nil)
		claimer.On("ClaimAnonymousRecord", ctx, "user_anon-42", mock.AnythingOfType("string")).Return(nil)

		user, err := service.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)

		claimer.AssertExpectations(t)
	})

	t.Run("Success: Claim failure does not fail registration", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		claimer := new(MockStreakClaimer)
		service := NewAuthService(mockRepo, claimer)
		ctx := context.Background()

		input := RegisterInput{
			Email:       "claimfail@awa.app",
			Password:    "StrongPassword123!",
			AnonymousID: "user_anon-broken",
		}

		mockRepo.On("Create", ctx, mock.Anything).Return(nil)
		claimer.On("ClaimAnonymousRecord", ctx, "user_anon-broken", mock.Anything).Return(assert.AnError)

		user, err := service.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Fail: Should return error for invalid email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(mockRepo, nil)
		ctx := context.Background()

		input := RegisterInput{Email: "not-an-email", Password: "pass"}

		user, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Nil(t, user)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should return error for short password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(mockRepo, nil)
		ctx := context.Background()

		input := RegisterInput{Email: "valid@email.com", Password: "short"}

		user, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		assert.Nil(t, user)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should propagate repository error (Duplicate Email)", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(mockRepo, nil)
		ctx := context.Background()

		input := RegisterInput{Email: "duplicate@email.com", Password: "StrongPassword123!"}

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrEmailAlreadyExists)

		user, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.Nil(t, user)

		mockRepo.AssertExpectations(t)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	newStoredUser := func(t *testing.T, password string) *domain.User {
		user, err := domain.NewUser("user-1", "login@awa.app", "Amina")
		assert.NoError(t, err)
		assert.NoError(t, user.SetPassword(password))
		return user
	}

	t.Run("Success: Valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(mockRepo, nil)
		ctx := context.Background()

		stored := newStoredUser(t, "StrongPassword123!")
		mockRepo.On("GetByEmail", ctx, "login@awa.app").Return(stored, nil)

		user, err := service.Login(ctx, LoginInput{Email: "login@awa.app", Password: "StrongPassword123!"})

		assert.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("Fail: Wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(mockRepo, nil)
		ctx := context.Background()

		stored := newStoredUser(t, "StrongPassword123!")
		mockRepo.On("GetByEmail", ctx, "login@awa.app").Return(stored, nil)

		user, err := service.Login(ctx, LoginInput{Email: "login@awa.app", Password: "WrongPassword!"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("Fail: Unknown email maps to invalid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("GetByEmail", ctx, "ghost@awa.app").Return(nil, domain.ErrUserNotFound)

		user, err := service.Login(ctx, LoginInput{Email: "ghost@awa.app", Password: "whatever123"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, user)
	})
}
