package ports

import (
	"context"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
)

// BookingRepository reads the booking history that belongs to a user.
type BookingRepository interface {
	FindByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
}
