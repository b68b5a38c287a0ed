package ports

import (
	"context"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string
}

// LoginResult is returned by the service after a successful login.
type LoginResult struct {
	Token string
	Role  string
	// ExpirationLabel is a display string ("7 Days"), not derived from the
	// actual token expiry.
	ExpirationLabel string
}

// UserBookingHistory pairs a user with their bookings and the rooms booked.
type UserBookingHistory struct {
	User     *domain.User
	Bookings []domain.Booking
}

// UserService defines the account-management use cases. Lookup operations
// taking a userID parse it as a base-10 integer and fail with
// domain.ErrInvalidUserID when it is not numeric.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetAllUsers(ctx context.Context) ([]*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetMyInfo(ctx context.Context, email string) (*domain.User, error)
	GetUserBookingHistory(ctx context.Context, userID string) (*UserBookingHistory, error)
	DeleteUser(ctx context.Context, userID string) error
}
