package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
	"github.com/stayhub/hotel-booking-api/internal/core/ports"
)

// tokenLifetimeLabel is shown to clients next to the token. It mirrors the
// TTL configured on the token issuer but is a fixed display string.
const tokenLifetimeLabel = "7 Days"

// UserService implements account registration, login and lookups.
type UserService struct {
	users    ports.UserRepository
	bookings ports.BookingRepository
	hasher   ports.PasswordHasher
	auth     ports.Authenticator
	tokens   ports.TokenIssuer
	log      zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	bookings ports.BookingRepository,
	hasher ports.PasswordHasher,
	auth ports.Authenticator,
	tokens ports.TokenIssuer,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:    users,
		bookings: bookings,
		hasher:   hasher,
		auth:     auth,
		tokens:   tokens,
		log:      log,
	}
}

// Register creates a new account. Email uniqueness is enforced atomically
// by the repository; a duplicate surfaces as domain.ErrUserExists.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := strings.TrimSpace(input.Role)
	if role == "" {
		// TODO: default self-registrations to domain.RoleUser. The admin
		// default is kept for parity with the legacy API.
		role = domain.RoleAdmin
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials, re-fetches the account by email and issues a
// signed session token. Unknown email and wrong password both surface as
// domain errors the transport layer maps to the same not-found response.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if err := s.auth.Authenticate(ctx, email, password); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("login successful")
	return &ports.LoginResult{
		Token:           token,
		Role:            user.Role,
		ExpirationLabel: tokenLifetimeLabel,
	}, nil
}

// GetAllUsers returns every account in store order. No pagination.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetMyInfo(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// GetUserBookingHistory returns the user together with their bookings and
// the rooms those bookings refer to.
func (s *UserService) GetUserBookingHistory(ctx context.Context, userID string) (*ports.UserBookingHistory, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.UserBookingHistory{User: user, Bookings: bookings}, nil
}

// DeleteUser removes the account. The repository reports whether a row was
// actually removed, so a vanished account surfaces as not-found without a
// separate existence check.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}

	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// parseUserID converts the path identifier to the numeric id used by the
// store. Ids are allocated from a sequence, so anything non-numeric can
// never match an account.
func parseUserID(userID string) (int64, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidUserID
	}
	return id, nil
}
