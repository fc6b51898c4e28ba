// Package jwt implements the signed session token codec.
//
// Tokens are HS256-signed JWTs carrying the username as subject plus a
// numeric user id claim. The signing secret is process-wide configuration:
// rotating it invalidates every outstanding token, which is the only
// revocation mechanism in this stateless design.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "jsonplaceholder-api"

// Claims represents the JWT claims carried by a session token
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Service creates and validates session tokens
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service.
// secret should be a cryptographically secure random string.
func NewService(secret string, accessTokenTTL time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    accessTokenTTL,
	}
}

// Generate creates a signed token for the given principal with
// iat = now and exp = now + TTL
func (s *Service) Generate(userID int64, username string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ExtractSubject returns the subject claim without verifying the signature.
// Used for the fast principal lookup that precedes full validation; the
// result must not be trusted until Validate succeeds.
func (s *Service) ExtractSubject(tokenString string) (string, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

// Parse verifies the signature and expiry and returns the claims.
// Any failure (malformed structure, wrong algorithm, bad signature,
// expired) yields an error, never partial claims.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Validate reports whether the token is authentic, unexpired and issued
// for the expected principal
func (s *Service) Validate(tokenString, expectedSubject string) bool {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}
