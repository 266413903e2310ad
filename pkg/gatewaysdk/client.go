package gatewaysdk

import (
	"net/http"
	"strings"
	"time"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/jwtx"
)

// DefaultTokenTTL is the lifetime of the tokens a Session mints.
const DefaultTokenTTL = 5 * time.Minute

// SDKClient is a client for the gateway.
// It provides access to unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Prefix is prepended to every versioned route. Default: /v1
	Prefix string
}

// NewSDKClient creates a new gateway client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Prefix: "/v1",
	}
}

// TokenClaims describes the tokens a Session mints.
type TokenClaims struct {
	Subject  string
	Issuer   string
	Audience string

	// TTL defaults to DefaultTokenTTL.
	TTL time.Duration
}

// NewSession creates an authenticated session that signs its own tokens.
func (c *SDKClient) NewSession(signer jwtx.Signer, claims TokenClaims) *Session {
	if claims.TTL <= 0 {
		claims.TTL = DefaultTokenTTL
	}
	return &Session{
		client: c,
		signer: signer,
		claims: claims,
		now:    time.Now,
	}
}
