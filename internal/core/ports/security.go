package ports

import (
	"context"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
)

// PasswordHasher produces and verifies one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Compare returns nil when plaintext matches the stored hash.
	Compare(hash, plaintext string) error
}

// Authenticator verifies login credentials. It returns
// domain.ErrUserNotFound for an unknown email and
// domain.ErrInvalidCredentials for a wrong password.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) error
}

// TokenIssuer signs a session token for an authenticated user.
type TokenIssuer interface {
	Generate(user *domain.User) (string, error)
}
