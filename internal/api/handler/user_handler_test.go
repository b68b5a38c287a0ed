package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
	"github.com/stayhub/hotel-booking-api/internal/core/ports"
)

type stubUserService struct {
	registerFn       func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn          func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	getAllFn         func(ctx context.Context) ([]*domain.User, error)
	getByIDFn        func(ctx context.Context, userID string) (*domain.User, error)
	getMyInfoFn      func(ctx context.Context, email string) (*domain.User, error)
	bookingHistoryFn func(ctx context.Context, userID string) (*ports.UserBookingHistory, error)
	deleteFn         func(ctx context.Context, userID string) error
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.getAllFn(ctx)
}

func (s *stubUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.getByIDFn(ctx, userID)
}

func (s *stubUserService) GetMyInfo(ctx context.Context, email string) (*domain.User, error) {
	return s.getMyInfoFn(ctx, email)
}

func (s *stubUserService) GetUserBookingHistory(ctx context.Context, userID string) (*ports.UserBookingHistory, error) {
	return s.bookingHistoryFn(ctx, userID)
}

func (s *stubUserService) DeleteUser(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Email != "a@x.com" || input.Password != "secret" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 1, Email: input.Email, Role: domain.RoleAdmin, PasswordHash: "$2a$10$hash"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"secret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") || strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password material leaked into view: %s", rec.Body.String())
	}

	var resp struct {
		StatusCode int       `json:"status_code"`
		User       *userView `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected body status: %d", resp.StatusCode)
	}
	if resp.User == nil || resp.User.Email != "a@x.com" || resp.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"secret"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "a@x.comAlready Exists") {
		t.Fatalf("expected duplicate message with email, got %s", rec.Body.String())
	}
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", "not-json")
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":"not-an-email"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Register_UnexpectedError(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"pw"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error Occurred During USer Registration connection reset") {
		t.Fatalf("expected prefixed message, got %s", rec.Body.String())
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "a@x.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.LoginResult{Token: "token123", Role: domain.RoleAdmin, ExpirationLabel: "7 Days"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" || resp.Role != domain.RoleAdmin {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.ExpirationTime != "7 Days" {
		t.Fatalf("unexpected expiration label: %s", resp.ExpirationTime)
	}
	if resp.Message != "successful" {
		t.Fatalf("unexpected message: %s", resp.Message)
	}
}

func TestUserHandler_Login_Failure(t *testing.T) {
	for _, failure := range []error{domain.ErrInvalidCredentials, domain.ErrUserNotFound} {
		e := newTestEcho()
		stub := &stubUserService{
			loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
				return nil, failure
			},
		}
		h := NewUserHandler(stub)

		c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"bad"}`)
		_ = h.Login(c)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("%v: expected 404, got %d", failure, rec.Code)
		}
	}
}

func TestUserHandler_Login_UnexpectedError(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, errors.New("signer unavailable")
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"pw"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error Occurred During USer Login signer unavailable") {
		t.Fatalf("expected prefixed message, got %s", rec.Body.String())
	}
}

func TestUserHandler_GetAll_EmptyStore(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getAllFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/v1/users", "")
	if err := h.GetAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"user_list":[]`) {
		t.Fatalf("expected empty user_list, got %s", rec.Body.String())
	}
}

func TestUserHandler_GetAll_Error(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getAllFn: func(ctx context.Context) ([]*domain.User, error) {
			return nil, errors.New("cursor timeout")
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/v1/users", "")
	_ = h.GetAll(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error getting all users cursor timeout") {
		t.Fatalf("expected prefixed message, got %s", rec.Body.String())
	}
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/v1/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	_ = h.GetByID(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User Not Found") {
		t.Fatalf("expected not-found message, got %s", rec.Body.String())
	}
}

func TestUserHandler_GetByID_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, domain.ErrInvalidUserID
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/v1/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	_ = h.GetByID(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Me(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getMyInfoFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "a@x.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &domain.User{ID: 1, Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/v1/users/me", "")
	c.Set("email", "a@x.com")
	c.Set("role", domain.RoleUser)

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Me_MissingClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getMyInfoFn: func(ctx context.Context, email string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/v1/users/me", "")
	if err := h.Me(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserHandler_BookingHistory(t *testing.T) {
	e := newTestEcho()
	checkIn := time.Date(2026, 10, 1, 15, 0, 0, 0, time.UTC)
	stub := &stubUserService{
		bookingHistoryFn: func(ctx context.Context, userID string) (*ports.UserBookingHistory, error) {
			return &ports.UserBookingHistory{
				User: &domain.User{ID: 1, Email: "a@x.com", Role: domain.RoleUser},
				Bookings: []domain.Booking{{
					ID:               7,
					UserID:           1,
					CheckInDate:      checkIn,
					CheckOutDate:     checkIn.AddDate(0, 0, 2),
					NumAdults:        2,
					TotalGuests:      2,
					ConfirmationCode: "BK-7F3A",
					Room:             domain.Room{ID: 3, Type: "suite", PricePerNight: 210},
				}},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/v1/users/1/bookings", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.BookingHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		User *userView `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User == nil || len(resp.User.Bookings) != 1 {
		t.Fatalf("expected one booking, got %+v", resp.User)
	}
	if resp.User.Bookings[0].Room.Type != "suite" {
		t.Fatalf("unexpected room: %+v", resp.User.Bookings[0].Room)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, userID string) error {
			if userID != "5" {
				t.Fatalf("unexpected id: %s", userID)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/v1/users/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "successful") {
		t.Fatalf("expected success message, got %s", rec.Body.String())
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, userID string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/v1/users/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	_ = h.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
