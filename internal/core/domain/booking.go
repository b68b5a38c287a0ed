package domain

import "time"

// Room describes the room a booking refers to.
type Room struct {
	ID            int64   `json:"id" bson:"id"`
	Type          string  `json:"type" bson:"type"`
	PricePerNight float64 `json:"price_per_night" bson:"price_per_night"`
	PhotoURL      string  `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
}

// Booking is a single stay reservation belonging to a user.
type Booking struct {
	ID               int64     `json:"id" bson:"_id"`
	UserID           int64     `json:"user_id" bson:"user_id"`
	CheckInDate      time.Time `json:"check_in_date" bson:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date" bson:"check_out_date"`
	NumAdults        int       `json:"num_adults" bson:"num_adults"`
	NumChildren      int       `json:"num_children" bson:"num_children"`
	TotalGuests      int       `json:"total_guests" bson:"total_guests"`
	ConfirmationCode string    `json:"confirmation_code" bson:"confirmation_code"`
	Room             Room      `json:"room" bson:"room"`
}
