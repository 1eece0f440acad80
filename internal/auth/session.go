package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// SessionClaims identifies an anonymous shopping session.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionTokens issues and validates signed session tokens.
type SessionTokens struct {
	secretKey []byte
	expiry    time.Duration
}

func NewSessionTokens(secretKey string, expiry time.Duration) *SessionTokens {
	return &SessionTokens{
		secretKey: []byte(secretKey),
		expiry:    expiry,
	}
}

// Issue starts a new session and returns its ID with a token for it.
func (s *SessionTokens) Issue() (sessionID, token string, expiresAt time.Time, err error) {
	sessionID = uuid.NewString()
	token, expiresAt, err = s.Generate(sessionID)
	return sessionID, token, expiresAt, err
}

// Generate creates a token for an existing session ID.
func (s *SessionTokens) Generate(sessionID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// Validate checks the token signature and expiry and returns its claims.
func (s *SessionTokens) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Expiry is the lifetime of issued tokens.
func (s *SessionTokens) Expiry() time.Duration {
	return s.expiry
}
