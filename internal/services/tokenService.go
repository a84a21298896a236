package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed token, or expiry. Callers must not branch on the
// underlying cause.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the claim set embedded in a token.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs the identity claims with a fixed expiry.
func (s *TokenService) Issue(identity Identity) (string, error) {
	claims := jwt.MapClaims{
		"email": identity.Email,
		"role":  identity.Role,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded identity.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Identity{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return Identity{Email: email, Role: role}, nil
}
