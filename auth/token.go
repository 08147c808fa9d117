// Package auth adapts identity tokens issued by the identity collaborator
// into domain actors.
package auth

import (
	"chat-vault/domain"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "chat-vault"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID   string      `json:"user_id" validate:"required"`
	Role     domain.Role `json:"role" validate:"required,oneof=user creator admin moderator"`
	Verified bool        `json:"verified"`
	jwt.RegisteredClaims
}

func (c CustomClaims) Actor() domain.Actor {
	return domain.Actor{ID: c.UserID, Role: c.Role, Verified: c.Verified}
}

// Issuer signs and verifies HS256 tokens with a shared secret.
type Issuer struct {
	secret   []byte
	duration time.Duration
}

func NewIssuer(secret string, duration time.Duration) (*Issuer, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	return &Issuer{secret: []byte(secret), duration: duration}, nil
}

// GenerateToken creates a signed JWT for an actor.
func (i *Issuer) GenerateToken(actor domain.Actor) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID:   actor.ID,
		Role:     actor.Role,
		Verified: actor.Verified,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	if err := ValidateClaims(*claims); err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func (i *Issuer) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if err := ValidateClaims(*claims); err != nil {
		return nil, err
	}
	return claims, nil
}
