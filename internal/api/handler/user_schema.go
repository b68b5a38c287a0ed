package handler

import "time"

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Response envelopes ---
//
// Every operation returns status_code and message plus at most one payload
// field. Each operation owns its envelope type, so a response can never
// carry a payload combination the operation does not produce.

// statusResponse is the payload-free envelope used for deletes and errors.
type statusResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message,omitempty"`
}

type userResponse struct {
	StatusCode int       `json:"status_code"`
	Message    string    `json:"message,omitempty"`
	User       *userView `json:"user,omitempty"`
}

type userListResponse struct {
	StatusCode int        `json:"status_code"`
	Message    string     `json:"message,omitempty"`
	UserList   []userView `json:"user_list"`
}

type loginResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message,omitempty"`
	Token      string `json:"token"`
	Role       string `json:"role"`
	// ExpirationTime is a display label ("7 Days"), not a timestamp.
	ExpirationTime string `json:"expiration_time"`
}

// --- Views ---
//
// userView is the read-facing projection of a stored account. The password
// hash has no field here, so it cannot leak by construction.

type userView struct {
	ID       int64         `json:"id"`
	Email    string        `json:"email"`
	Name     string        `json:"name,omitempty"`
	Phone    string        `json:"phone,omitempty"`
	Role     string        `json:"role"`
	Bookings []bookingView `json:"bookings,omitempty"`
}

type roomView struct {
	ID            int64   `json:"id"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	PhotoURL      string  `json:"photo_url,omitempty"`
	Description   string  `json:"description,omitempty"`
}

type bookingView struct {
	ID               int64     `json:"id"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date"`
	NumAdults        int       `json:"num_adults"`
	NumChildren      int       `json:"num_children"`
	TotalGuests      int       `json:"total_guests"`
	ConfirmationCode string    `json:"confirmation_code"`
	Room             roomView  `json:"room"`
}
