package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HMACVerifier validates JWTs signed with a shared secret (HS256/384/512).
type HMACVerifier struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	opts   VerifyOptions
}

// NewHMACVerifier pins the verifier to a single HS* algorithm.
func NewHMACVerifier(secret []byte, alg string, opts VerifyOptions) (*HMACVerifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty HMAC secret")
	}
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &HMACVerifier{secret: secret, method: method, opts: opts}, nil
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HMACVerifier) Verify(tokenStr string) (Claims, error) {
	// Claims are validated below so leeway and required claims are applied
	// in one place.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, classifyParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.RequirePresent(); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateWindow(v.opts.Now().UTC(), v.opts.Leeway); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// HMACSigner signs claims with a shared secret. The gateway never issues
// tokens itself; this exists for tooling and tests that need valid callers.
type HMACSigner struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

func NewHMACSigner(secret []byte, alg string) (*HMACSigner, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty HMAC secret")
	}
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, err
	}
	return &HMACSigner{secret: secret, method: method}, nil
}

func (s *HMACSigner) Alg() string { return s.method.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HMACSigner) Sign(claims Claims) (string, error) {
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}
