package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port/mock"
	"github.com/kalakal/kalakal-api/internal/core/service"
	"github.com/kalakal/kalakal-api/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_RegisterUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger := zap.NewNop()

	tests := []struct {
		name     string
		user     domain.User
		mock     func(users *mock.MockUserRepository)
		expError error
	}{
		{
			name: "register buyer",
			user: domain.User{Login: "juan", Password: "pw", Role: domain.RoleBuyer},
			mock: func(users *mock.MockUserRepository) {
				users.EXPECT().GetUserByLogin(gomock.Any(), "juan").
					Return(nil, domain.ErrDataNotFound)
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						return u, nil
					})
			},
		},
		{
			name: "login taken",
			user: domain.User{Login: "juan", Password: "pw", Role: domain.RoleBuyer},
			mock: func(users *mock.MockUserRepository) {
				users.EXPECT().GetUserByLogin(gomock.Any(), "juan").
					Return(&domain.User{Login: "juan"}, nil)
			},
			expError: domain.ErrConflictingData,
		},
		{
			name: "rider gets a login code",
			user: domain.User{Login: "dave", Password: "pw", Role: domain.RoleRider},
			mock: func(users *mock.MockUserRepository) {
				users.EXPECT().GetUserByLogin(gomock.Any(), "dave").
					Return(nil, domain.ErrDataNotFound)
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						return u, nil
					})
			},
		},
		{
			name: "rider code regenerated on collision",
			user: domain.User{Login: "dave", Password: "pw", Role: domain.RoleRider},
			mock: func(users *mock.MockUserRepository) {
				users.EXPECT().GetUserByLogin(gomock.Any(), "dave").
					Return(nil, domain.ErrDataNotFound)
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						return u, nil
					})
			},
		},
		{
			name: "rider code exhausted",
			user: domain.User{Login: "dave", Password: "pw", Role: domain.RoleRider},
			mock: func(users *mock.MockUserRepository) {
				users.EXPECT().GetUserByLogin(gomock.Any(), "dave").
					Return(nil, domain.ErrDataNotFound)
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData).Times(utils.CodeAttempts)
			},
			expError: domain.ErrCodeExhausted,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			users := mock.NewMockUserRepository(mockCtrl)
			tokens := mock.NewMockTokenService(mockCtrl)
			test.mock(users)

			s, err := service.NewUserService(users, tokens, logger)
			require.NoError(t, err)

			result, err := s.RegisterUser(context.Background(), &test.user)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEqual(t, uuid.Nil, result.ID)
			if test.user.Role == domain.RoleRider {
				assert.Regexp(t, `^[A-Z]{4}[0-9]{4}$`, result.LoginCode)
			} else {
				assert.Empty(t, result.LoginCode)
			}
		})
	}
}

func TestUserService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger := zap.NewNop()

	hashed, err := utils.HashPassword("secret")
	require.NoError(t, err)
	user := &domain.User{
		ID:       uuid.New(),
		Login:    "juan",
		Password: hashed,
		Role:     domain.RoleBuyer,
	}

	tests := []struct {
		name     string
		login    string
		password string
		mock     func(users *mock.MockUserRepository, tokens *mock.MockTokenService)
		expError error
	}{
		{
			name:     "login good",
			login:    "juan",
			password: "secret",
			mock: func(users *mock.MockUserRepository, tokens *mock.MockTokenService) {
				users.EXPECT().GetUserByLogin(gomock.Any(), "juan").Return(user, nil)
				tokens.EXPECT().CreateToken(user).Return("token", nil)
			},
		},
		{
			name:     "wrong password",
			login:    "juan",
			password: "hacker",
			mock: func(users *mock.MockUserRepository, tokens *mock.MockTokenService) {
				users.EXPECT().GetUserByLogin(gomock.Any(), "juan").Return(user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown login",
			login:    "nobody",
			password: "secret",
			mock: func(users *mock.MockUserRepository, tokens *mock.MockTokenService) {
				users.EXPECT().GetUserByLogin(gomock.Any(), "nobody").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			users := mock.NewMockUserRepository(mockCtrl)
			tokens := mock.NewMockTokenService(mockCtrl)
			test.mock(users, tokens)

			s, err := service.NewUserService(users, tokens, logger)
			require.NoError(t, err)

			token, err := s.LoginUser(context.Background(), test.login, test.password)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "token", token)
		})
	}
}
