package jwtx

import (
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the caller identity claims accepted by the gateway. Only the
// registered claims matter here, the caller identity is whatever "sub" says.
type Claims struct {
	jwt.RegisteredClaims
}

// RequiredClaims lists the claims every inbound token must carry.
var RequiredClaims = []string{"exp", "nbf", "iss", "aud"}

// NewClaims builds a claim set valid from now until now+ttl.
func NewClaims(subject, issuer string, audience []string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// RequirePresent reports the first claim of RequiredClaims that is absent.
func (c *Claims) RequirePresent() error {
	for _, name := range RequiredClaims {
		var present bool
		switch name {
		case "exp":
			present = c.ExpiresAt != nil
		case "nbf":
			present = c.NotBefore != nil
		case "iss":
			present = c.Issuer != ""
		case "aud":
			present = len(c.Audience) > 0
		}
		if !present {
			return fmt.Errorf("%w: %q", ErrMissingClaim, name)
		}
	}
	return nil
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateWindow checks nbf-leeway <= now <= exp+leeway.
func (c *Claims) ValidateWindow(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
