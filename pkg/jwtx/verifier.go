package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures the expectations every inbound token must meet.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Audience values the token must contain (claims.aud). Empty means "don't care".
	Audience []string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// Now overrides the clock, tests only.
	Now func() time.Time
}

var (
	ErrMalformed      = errors.New("jwtx: malformed token")
	ErrAlgUnsupported = errors.New("jwtx: unsupported algorithm")
	ErrInvalidSig     = errors.New("jwtx: invalid signature")
	ErrMissingClaim   = errors.New("jwtx: missing required claim")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// hmacMethod resolves alg to one of the HS* signing methods.
func hmacMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	m, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAlgUnsupported, alg)
	}
	return m, nil
}

// classifyParseError maps jwt library errors onto the package sentinels so
// callers never need to import the jwt package to branch on them.
func classifyParseError(err error) error {
	// A disallowed alg header also surfaces as ErrTokenSignatureInvalid.
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	}
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}
