package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spendtrack/internal/auth"
	"spendtrack/internal/errors"
	"spendtrack/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", 15*time.Minute)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "successful signup",
			email:    "Alice@Example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			wantErr: nil,
		},
		{
			name:     "duplicate email",
			email:    "alice@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{ID: 1, Email: "alice@example.com"}, nil)
			},
			wantErr: errors.ErrEmailTaken,
		},
		{
			name:      "password too short",
			email:     "alice@example.com",
			password:  "short",
			setupMock: func(repo *MockUserRepository) {},
			wantErr:   errors.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, newTestJWTService())
			user, err := svc.Signup(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, user) {
					assert.Equal(t, "alice@example.com", user.Email)
					// stored hash verifies against the plaintext and is not the plaintext
					assert.NotEqual(t, tt.password, user.PasswordHash)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
				}
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &model.User{ID: 7, Email: "alice@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
				repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			wantErr: nil,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-password",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
			},
			wantErr: errors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			jwtService := newTestJWTService()
			svc := NewAuthService(repo, jwtService)
			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, stored.ID, claims.UserID)
				assert.Equal(t, stored.Email, claims.Subject)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginUpdatesLastLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &model.User{ID: 7, Email: "alice@example.com", PasswordHash: string(hash)}

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.LastLoginAt != nil
	})).Return(nil)

	svc := NewAuthService(repo, newTestJWTService())
	_, err = svc.Login(context.Background(), "alice@example.com", "password123")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
