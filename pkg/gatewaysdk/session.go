package gatewaysdk

import (
	"fmt"
	"sync"
	"time"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/jwtx"
)

// Session represents an authenticated session.
// Tokens are minted lazily and reused until shortly before they expire.
type Session struct {
	client *SDKClient
	signer jwtx.Signer
	claims TokenClaims
	now    func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// expiryBuffer is how long before expiry a token stops being reused.
const expiryBuffer = 30 * time.Second

// getValidToken returns a token, minting a new one when needed.
func (s *Session) getValidToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.token != "" && now.Before(s.expiresAt) {
		return s.token, nil
	}

	claims := jwtx.NewClaims(s.claims.Subject, s.claims.Issuer, []string{s.claims.Audience}, s.claims.TTL, now)
	token, err := s.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.token = token
	s.expiresAt = now.Add(s.claims.TTL - expiryBuffer)
	return token, nil
}
