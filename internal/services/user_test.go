package service_test

import (
	"errors"
	"testing"
	"time"

	appErrors "github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories/mocks"
	service "github.com/anayakhandelwal/artisan-gallery-platform/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWTKey = []byte("test-signing-key")

func newUserServiceTest() (service.UserService, *mocks.UserRepository, *mocks.RateLimitRepository) {
	mockRepo := new(mocks.UserRepository)
	mockRateLimit := new(mocks.RateLimitRepository)

	return service.NewUserService(mockRepo, mockRateLimit, testJWTKey, 24*time.Hour), mockRepo, mockRateLimit
}

func TestUserService_Register(t *testing.T) {

	t.Run("Success - Password Is Hashed", func(t *testing.T) {
		// Arrange
		userService, mockRepo, _ := newUserServiceTest()
		ctx := t.Context()

		mockRepo.On("GetUserByEmail", ctx, "anaya@example.com").Return(nil, errors.New("no rows")).Once()
		mockRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

		// Act
		user, err := userService.Register(ctx, &models.RegisterRequest{
			Email:    "anaya@example.com",
			Password: "secret123",
			Name:     "Anaya",
		})

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Email Already Registered", func(t *testing.T) {
		// Arrange
		userService, mockRepo, _ := newUserServiceTest()
		ctx := t.Context()

		existing := &models.User{ID: uuid.New(), Email: "anaya@example.com"}
		mockRepo.On("GetUserByEmail", ctx, "anaya@example.com").Return(existing, nil).Once()

		// Act
		user, err := userService.Register(ctx, &models.RegisterRequest{
			Email:    "anaya@example.com",
			Password: "secret123",
			Name:     "Anaya",
		})

		// Assert
		assert.Nil(t, user)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		userService, mockRepo, _ := newUserServiceTest()
		ctx := t.Context()

		mockRepo.On("GetUserByEmail", ctx, "anaya@example.com").Return(nil, errors.New("no rows")).Once()
		mockRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(errors.New("connection refused")).Once()

		// Act
		user, err := userService.Register(ctx, &models.RegisterRequest{
			Email:    "anaya@example.com",
			Password: "secret123",
			Name:     "Anaya",
		})

		// Assert
		assert.Nil(t, user)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:       uuid.New(),
		Email:    "anaya@example.com",
		Password: string(hashed),
	}

	t.Run("Success - Token Carries User Claims", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimit := newUserServiceTest()
		ctx := t.Context()

		mockRateLimit.On("CheckLoginRateLimit", ctx, "anaya@example.com").Return(true, 4, 0, nil).Once()
		mockRepo.On("GetUserByEmail", ctx, "anaya@example.com").Return(storedUser, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "anaya@example.com", Password: "secret123"})

		// Assert
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, storedUser.ID, resp.UserID)
		assert.Positive(t, resp.ExpiresIn)

		claims := &models.Claims{}
		_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
			return testJWTKey, nil
		})
		require.NoError(t, err)
		assert.Equal(t, storedUser.ID, claims.UserID)
		assert.Equal(t, storedUser.Email, claims.Email)

		mockRepo.AssertExpectations(t)
		mockRateLimit.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimit := newUserServiceTest()
		ctx := t.Context()

		mockRateLimit.On("CheckLoginRateLimit", ctx, "anaya@example.com").Return(true, 2, 0, nil).Once()
		mockRepo.On("GetUserByEmail", ctx, "anaya@example.com").Return(storedUser, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "anaya@example.com", Password: "wrong"})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Token)
		assert.Equal(t, 2, resp.RemainingTries)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimit := newUserServiceTest()
		ctx := t.Context()

		mockRateLimit.On("CheckLoginRateLimit", ctx, "anaya@example.com").Return(false, 0, 42, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "anaya@example.com", Password: "secret123"})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 42, resp.RetryAfter)
		mockRepo.AssertNotCalled(t, "GetUserByEmail")
		mockRateLimit.AssertExpectations(t)
	})

	t.Run("Failure - Rate Limit Backend Error", func(t *testing.T) {
		// Arrange
		userService, _, mockRateLimit := newUserServiceTest()
		ctx := t.Context()

		mockRateLimit.On("CheckLoginRateLimit", ctx, "anaya@example.com").Return(false, 0, 0, errors.New("redis down")).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "anaya@example.com", Password: "secret123"})

		// Assert
		assert.Nil(t, resp)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		mockRateLimit.AssertExpectations(t)
	})
}
