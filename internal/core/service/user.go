package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"github.com/kalakal/kalakal-api/internal/core/utils"
	"go.uber.org/zap"
)

const loginCodeLetters = 4
const loginCodeDigits = 4

type UserService struct {
	users        port.UserRepository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewUserService(users port.UserRepository, tokenService port.TokenService,
	logger *zap.Logger) (*UserService, error) {
	return &UserService{
		users:        users,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

func (s *UserService) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.users.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	user.ID = uuid.New()

	// Riders get a short login code alongside the regular credentials. The
	// code is unique-inserted with the user row, so a collision surfaces as
	// a conflict and we regenerate.
	if user.Role == domain.RoleRider {
		return s.registerRider(ctx, user)
	}

	newUser, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *UserService) registerRider(ctx context.Context, user *domain.User) (*domain.User, error) {
	for attempt := 0; attempt < utils.CodeAttempts; attempt++ {
		code, err := utils.GenerateCode(loginCodeLetters, loginCodeDigits)
		if err != nil {
			s.logger.Error("Generate rider login code", zap.Error(err))
			return nil, domain.ErrInternal
		}
		user.LoginCode = code

		newUser, err := s.users.CreateUser(ctx, user)
		if err == nil {
			return newUser, nil
		}
		if !errors.Is(err, domain.ErrConflictingData) {
			s.logger.Error("Create rider", zap.Error(err))
			return nil, domain.ErrInternal
		}
	}

	s.logger.Error("Rider login code generation exhausted",
		zap.Int("attempts", utils.CodeAttempts))
	return nil, domain.ErrCodeExhausted
}

func (s *UserService) LoginUser(ctx context.Context, login string, password string) (string, error) {
	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}
