package usecase

import (
	"bakehouse/internal/domain/user"
	"bakehouse/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is what the auth middleware needs from the JWT layer.
type TokenValidator interface {
	ValidateToken(token string) (userID, tenantID uuid.UUID, role user.Role, err error)
}

type jwtTokenValidator struct {
	svc *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return &jwtTokenValidator{svc: svc}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, uuid.UUID, user.Role, error) {
	claims, err := v.svc.ValidateToken(token)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", err
	}
	return claims.UserID, claims.TenantID, role, nil
}
