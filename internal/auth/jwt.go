// Package auth verifies the access tokens presented by caregivers and
// operators. Tokens are minted by the shared identity provider; the
// signer here exists for the token CLI and for tests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid access token")

const clockLeeway = 30 * time.Second

// JWTManager signs and verifies HS256 access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockLeeway),
		),
	}
}

// accessClaims extends standard JWT claims with the caller's role.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed token with the user ID as subject.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("generate token: nil subject")
	}
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies a token and returns its subject and role.
// Every failure wraps ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return uuid.Nil, "", fmt.Errorf("token is empty: %w", ErrInvalidToken)
	}

	var claims accessClaims
	token, err := m.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, "", fmt.Errorf("token expired: %w", ErrInvalidToken)
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return uuid.Nil, "", fmt.Errorf("invalid issuer: %w", ErrInvalidToken)
		}
		return uuid.Nil, "", fmt.Errorf("parse token: %v: %w", err, ErrInvalidToken)
	}
	if !token.Valid {
		return uuid.Nil, "", fmt.Errorf("invalid token claims: %w", ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject: %w", ErrInvalidToken)
	}

	return userID, claims.Role, nil
}
