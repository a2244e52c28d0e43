package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccountKind separates the two account collections sharing the token flow.
type AccountKind string

const (
	KindClient     AccountKind = "client"
	KindFreelancer AccountKind = "freelancer"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the short-lived credential payload. It embeds a small set
// of profile fields so the frontend can render without an extra fetch.
type AccessClaims struct {
	AccountID       string      `json:"_id"`
	Kind            AccountKind `json:"kind"`
	Email           string      `json:"email"`
	Location        string      `json:"location,omitempty"`
	HourlyRate      float64     `json:"hourly_rate,omitempty"`
	ExperienceLevel string      `json:"experience_level,omitempty"`
	jwt.RegisteredClaims
}

// RefreshClaims carries only the account identity.
type RefreshClaims struct {
	AccountID string      `json:"_id"`
	Kind      AccountKind `json:"kind"`
	jwt.RegisteredClaims
}

// AccessProfile is the profile subset embedded in access tokens.
type AccessProfile struct {
	Email           string
	Location        string
	HourlyRate      float64
	ExperienceLevel string
}

func GenerateAccessToken(secret string, ttlMin int, accountID string, kind AccountKind, profile AccessProfile) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		AccountID:       accountID,
		Kind:            kind,
		Email:           profile.Email,
		Location:        profile.Location,
		HourlyRate:      profile.HourlyRate,
		ExperienceLevel: profile.ExperienceLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlMin) * time.Minute)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func GenerateRefreshToken(secret string, ttlHours int, accountID string, kind AccountKind) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		AccountID: accountID,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			// iat/exp are second-granularity; the jti keeps every issued
			// token distinct so rotation always stores a new value.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlHours) * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(secret, tokenStr string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || claims.AccountID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken verifies signature and expiry and returns the claims.
func ParseRefreshToken(secret, tokenStr string) (*RefreshClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &RefreshClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*RefreshClaims)
	if !ok || claims.AccountID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
