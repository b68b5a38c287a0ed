package security

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stayhub/hotel-booking-api/internal/core/domain"
)

// DefaultTokenTTL matches the "7 Days" lifetime advertised on login.
const DefaultTokenTTL = 7 * 24 * time.Hour

// JWTIssuer signs HS256 session tokens carrying the user identity claims
// consumed by the auth middleware.
type JWTIssuer struct {
	secret   string
	tokenTTL time.Duration
}

func NewJWTIssuer(secret string, tokenTTL time.Duration) *JWTIssuer {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &JWTIssuer{secret: secret, tokenTTL: tokenTTL}
}

func (i *JWTIssuer) Generate(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(i.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}
