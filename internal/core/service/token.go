package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

const defaultTokenTTL = 60 * time.Minute

// TokenIssuer issues and parses HS256-signed identity tokens. Identity is
// fully stateless: there is no session store, a token alone reconstructs the
// caller.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer. A non-positive ttl falls back to the
// 60 minute default.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id and denormalized identity claims.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
		"role":     string(user.Role),
		"status":   string(user.Status),
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Parse verifies the token's signature and expiry and returns the subject
// user id. ok is false for malformed, tampered or expired tokens.
func (t *TokenIssuer) Parse(token string) (uuid.UUID, bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !tkn.Valid {
		return uuid.Nil, false
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
