package ports

import (
	"context"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Uniqueness of the email is enforced by the store itself: Create returns
// domain.ErrUserExists on a duplicate, and DeleteByID returns
// domain.ErrUserNotFound when no row was removed, so callers never need a
// separate existence check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	DeleteByID(ctx context.Context, id int64) error
}
