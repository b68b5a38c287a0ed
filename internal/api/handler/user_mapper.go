package handler

import (
	"github.com/stayhub/hotel-booking-api/internal/core/domain"
)

// --- Entity → view ---

func toUserView(u *domain.User) userView {
	return userView{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

func toUserViewList(users []*domain.User) []userView {
	out := make([]userView, len(users))
	for i, u := range users {
		out[i] = toUserView(u)
	}
	return out
}

func toUserViewWithBookings(u *domain.User, bookings []domain.Booking) userView {
	view := toUserView(u)
	view.Bookings = toBookingViews(bookings)
	return view
}

func toBookingViews(bookings []domain.Booking) []bookingView {
	out := make([]bookingView, len(bookings))
	for i, b := range bookings {
		out[i] = bookingView{
			ID:               b.ID,
			CheckInDate:      b.CheckInDate.UTC(),
			CheckOutDate:     b.CheckOutDate.UTC(),
			NumAdults:        b.NumAdults,
			NumChildren:      b.NumChildren,
			TotalGuests:      b.TotalGuests,
			ConfirmationCode: b.ConfirmationCode,
			Room: roomView{
				ID:            b.Room.ID,
				Type:          b.Room.Type,
				PricePerNight: b.Room.PricePerNight,
				PhotoURL:      b.Room.PhotoURL,
				Description:   b.Room.Description,
			},
		}
	}
	return out
}
