package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/hotel-booking-api/internal/api/metrics"
	"github.com/stayhub/hotel-booking-api/internal/core/domain"
	"github.com/stayhub/hotel-booking-api/internal/core/ports"
)

const msgSuccessful = "successful"

// Error-message prefixes are kept byte-for-byte compatible with the
// previous API, typos included; existing clients match on them.
const (
	prefixRegisterError = "Error Occurred During USer Registration "
	prefixLoginError    = "Error Occurred During USer Login "
	prefixLookupError   = "Error getting all users "
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /auth/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return envelope(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return envelope(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return envelope(c, http.StatusBadRequest, req.Email+"Already Exists")
		}
		return envelope(c, http.StatusInternalServerError, prefixRegisterError+err.Error())
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()

	view := toUserView(user)
	return c.JSON(http.StatusOK, userResponse{StatusCode: http.StatusOK, User: &view})
}

// Login authenticates a user and returns a signed session token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /auth/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return envelope(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return envelope(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are deliberately
		// indistinguishable to the caller.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return envelope(c, http.StatusNotFound, err.Error())
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return envelope(c, http.StatusInternalServerError, prefixLoginError+err.Error())
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		StatusCode:     http.StatusOK,
		Message:        msgSuccessful,
		Token:          result.Token,
		Role:           result.Role,
		ExpirationTime: result.ExpirationLabel,
	})
}

// GetAll lists every registered account.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      500  {object}  statusResponse
// @Router       /v1/users [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.GetAllUsers(c.Request().Context())
	if err != nil {
		return envelope(c, http.StatusInternalServerError, prefixLookupError+err.Error())
	}

	return c.JSON(http.StatusOK, userListResponse{
		StatusCode: http.StatusOK,
		Message:    msgSuccessful,
		UserList:   toUserViewList(users),
	})
}

// GetByID fetches a single account by its numeric id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.service.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.lookupFailure(c, err)
	}

	view := toUserView(user)
	return c.JSON(http.StatusOK, userResponse{
		StatusCode: http.StatusOK,
		Message:    msgSuccessful,
		User:       &view,
	})
}

// Me fetches the account of the authenticated caller.
//
// @Summary      Get the logged-in user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetMyInfo(c.Request().Context(), email)
	if err != nil {
		return h.lookupFailure(c, err)
	}

	view := toUserView(user)
	return c.JSON(http.StatusOK, userResponse{
		StatusCode: http.StatusOK,
		Message:    msgSuccessful,
		User:       &view,
	})
}

// BookingHistory fetches a user together with their bookings and rooms.
//
// @Summary      Get a user's booking history
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /v1/users/{id}/bookings [get]
func (h *UserHandler) BookingHistory(c echo.Context) error {
	history, err := h.service.GetUserBookingHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.lookupFailure(c, err)
	}

	view := toUserViewWithBookings(history.User, history.Bookings)
	return c.JSON(http.StatusOK, userResponse{
		StatusCode: http.StatusOK,
		Message:    msgSuccessful,
		User:       &view,
	})
}

// Delete removes a user account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Failure      400  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return h.lookupFailure(c, err)
	}

	metrics.UsersDeletedTotal.Inc()
	return envelope(c, http.StatusOK, msgSuccessful)
}

// lookupFailure maps service errors from the lookup-style operations to
// their envelopes: 404 for a missing account, 400 for a malformed id, 500
// with the legacy prefix for anything unexpected.
func (h *UserHandler) lookupFailure(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return envelope(c, http.StatusNotFound, "User Not Found")
	case errors.Is(err, domain.ErrInvalidUserID):
		return envelope(c, http.StatusBadRequest, domain.ErrInvalidUserID.Error())
	default:
		return envelope(c, http.StatusInternalServerError, prefixLookupError+err.Error())
	}
}

// envelope writes a payload-free response whose body status code mirrors
// the HTTP status.
func envelope(c echo.Context, status int, message string) error {
	return c.JSON(status, statusResponse{StatusCode: status, Message: message})
}
