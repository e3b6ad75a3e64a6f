package usecase

import (
	"context"
	"errors"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/user"
	"github.com/Pruthvi98/klaw/internal/pkg/jwt"
	"github.com/Pruthvi98/klaw/internal/pkg/password"
	"github.com/Pruthvi98/klaw/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username user.Username) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials auth.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	ValidateToken(tokenString string) (ActorContext, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials auth.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	if _, err := user.NewRole(userReadModel.Role); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(
		userReadModel.ID,
		userReadModel.Username,
		userReadModel.TeamID,
		userReadModel.TenantID,
		userReadModel.Role,
	)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userReadModel.ID); err != nil {
		return "", nil, err
	}

	return token, userReadModel, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*readmodel.AuthorizedUserRM, error) {
	userReadModel, hashedPassword, err := a.userRepo.FindByUsername(ctx, credentials.Username())
	if err != nil {
		return nil, ErrUserNotFound
	}

	if userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	u, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (ActorContext, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return ActorContext{}, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return ActorContext{}, ErrTokenValidation
	}

	return ActorContext{
		UserID:   claims.UserID,
		Username: claims.Username,
		TeamID:   claims.TeamID,
		TenantID: claims.TenantID,
		Role:     role,
	}, nil
}
