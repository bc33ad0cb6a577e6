package helper

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignedDetails is the single claim set carried by an access token.
type SignedDetails struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HMAC access tokens. The secret is
// injected at startup; nothing here reads the environment.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

const TokenTTL = 3 * time.Hour

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Generate mints a token embedding the email claim, expiring after the
// service TTL.
func (t *TokenService) Generate(email string) (string, error) {
	claims := &SignedDetails{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate checks signature and expiry and returns the decoded claims.
func (t *TokenService) Validate(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("token parsing error: %w", err)
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("the token is invalid")
	}
	return claims, nil
}
