package identity

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredential is returned for any credential that fails verification.
// The cause is deliberately not exposed to callers.
var ErrInvalidCredential = errors.New("invalid or expired credential")

// JWTResolver verifies HMAC-signed JWTs against a shared secret and a fixed
// issuer. Tokens with a missing subject, wrong signing method, bad signature
// or foreign issuer are all rejected the same way.
type JWTResolver struct {
	secret []byte
	issuer string
}

// NewJWTResolver returns a Resolver backed by HMAC JWT verification.
func NewJWTResolver(secret, issuer string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret), issuer: issuer}
}

// Resolve parses and verifies the credential and extracts identity claims.
func (r *JWTResolver) Resolve(_ context.Context, credential string) (*Claims, error) {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (any, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredential
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredential
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != r.issuer {
		return nil, ErrInvalidCredential
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidCredential
	}

	resolved := &Claims{Subject: sub}
	if name, ok := claims["name"].(string); ok {
		resolved.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		resolved.Email = email
	}

	return resolved, nil
}

// SignToken mints a credential the resolver accepts. Used by tests and the
// development seeder; the production issuer is an external service.
func SignToken(secret, issuer, subject, name, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": issuer,
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}
	if email != "" {
		claims["email"] = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
