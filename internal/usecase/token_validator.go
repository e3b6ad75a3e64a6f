package usecase

import (
	"github.com/Pruthvi98/klaw/internal/domain/user"
	"github.com/Pruthvi98/klaw/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (ActorContext, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (ActorContext, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return ActorContext{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return ActorContext{}, err
	}

	return ActorContext{
		UserID:   claims.UserID,
		Username: claims.Username,
		TeamID:   claims.TeamID,
		TenantID: claims.TenantID,
		Role:     role,
	}, nil
}
