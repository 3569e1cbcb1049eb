package usecase

import (
	"techfest-backend/internal/pkg/identity"
)

// Caller is the authenticated identity attached to a request.
type Caller struct {
	UID   string
	Email string
}

// TokenValidator provides bearer-token validation for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (Caller, error)
}

type tokenValidatorImpl struct {
	identityService *identity.Service
}

func NewTokenValidator(identityService *identity.Service) TokenValidator {
	return &tokenValidatorImpl{
		identityService: identityService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Caller, error) {
	claims, err := t.identityService.VerifyIDToken(tokenString)
	if err != nil {
		return Caller{}, err
	}
	return Caller{UID: claims.UID, Email: claims.Email}, nil
}
