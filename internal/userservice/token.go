package userservice

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid authentication token")

// TokenService issues and verifies signed identity tokens. Tokens carry only
// the user id and never expire; there is no refresh or revocation.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

type identityClaims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

// Issue signs a token embedding the given user id.
func (s *TokenService) Issue(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, identityClaims{UserID: userID})
	return token.SignedString(s.secret)
}

// Verify checks the token signature and extracts the user id. Any malformed,
// tampered or wrongly-signed token fails with ErrInvalidToken.
func (s *TokenService) Verify(token string) (int, error) {
	parsed, err := jwt.ParseWithClaims(token, &identityClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*identityClaims)
	if !ok || claims.UserID < 1 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
