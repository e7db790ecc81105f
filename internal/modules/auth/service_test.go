package auth

import (
	"context"
	"testing"

	"shareit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7
	}
	return args.Error(0)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserStore)
	tokens := new(MockTokenIssuer)

	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokens.On("GenerateToken", int64(7)).Return("tok", nil)

	service := NewService(users, tokens)

	res, err := service.Register(context.Background(), RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.NotEqual(t, "password123", res.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("password123")))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	tokens := new(MockTokenIssuer)

	users.On("Create", mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	service := NewService(users, tokens)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})

	// a non-unique-violation error passes through untouched
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserStore)
	tokens := new(MockTokenIssuer)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID: 7, Email: "alice@example.com", PasswordHash: string(hash),
	}, nil)
	tokens.On("GenerateToken", int64(7)).Return("tok", nil)

	service := NewService(users, tokens)

	res, err := service.Login(context.Background(), LoginRequest{
		Email: "alice@example.com", Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserStore)
	tokens := new(MockTokenIssuer)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID: 7, Email: "alice@example.com", PasswordHash: string(hash),
	}, nil)

	service := NewService(users, tokens)

	_, err = service.Login(context.Background(), LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	tokens := new(MockTokenIssuer)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, tokens)

	_, err := service.Login(context.Background(), LoginRequest{
		Email: "ghost@example.com", Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
