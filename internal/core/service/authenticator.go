package service

import (
	"context"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
	"github.com/stayhub/hotel-booking-api/internal/core/ports"
)

// CredentialAuthenticator verifies an email/password pair against the
// stored hash. It is the only component that ever sees the plaintext
// password next to the hash.
type CredentialAuthenticator struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewCredentialAuthenticator(users ports.UserRepository, hasher ports.PasswordHasher) *CredentialAuthenticator {
	return &CredentialAuthenticator{users: users, hasher: hasher}
}

func (a *CredentialAuthenticator) Authenticate(ctx context.Context, email, password string) error {
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
