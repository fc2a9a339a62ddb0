package service

import (
	"errors"
	"os"

	"go-storefront-ws/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

// AuthService gates the admin dashboard behind the static shared
// secret. There are no user accounts; a correct secret yields a session
// token with the admin role.
type AuthService interface {
	Login(secret string) (string, error)
}

type authService struct{}

func NewAuthService() AuthService {
	return &authService{}
}

func (s *authService) Login(secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidSecret
	}

	// Prefer the bcrypt hash so the plain secret never has to live in
	// the environment.
	if hash := os.Getenv("ADMIN_SECRET_HASH"); hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
			return "", ErrInvalidSecret
		}
		return jwt.GenerateAdminToken()
	}

	plain := os.Getenv("ADMIN_SECRET")
	if plain == "" {
		return "", errors.New("admin secret not configured")
	}
	if secret != plain {
		return "", ErrInvalidSecret
	}
	return jwt.GenerateAdminToken()
}
