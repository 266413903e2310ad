package optscale

import (
	"context"
	"log/slog"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

const tokensPath = "/auth/v2/tokens"

const (
	msgUserIDMismatch = "Access Token User ID mismatch"
	msgTokenNotFound  = "Token not found in the response."
)

// AuthClient exchanges credentials for short-lived provider access tokens.
type AuthClient struct {
	Client *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{Client: c}
}

type tokenResponse struct {
	Token  *string `json:"token"`
	UserID string  `json:"user_id"`
}

// UserToken obtains an access token for userID using the admin secret.
// The token is returned only when the provider confirms it was issued for
// that same user.
func (a *AuthClient) UserToken(ctx context.Context, userID, adminKey string) (string, error) {
	log := slogx.FromContext(ctx).With(slog.String("user_id", userID))

	if userID == "" {
		return "", &ValidationError{Message: "user_id is required"}
	}
	if adminKey == "" {
		return "", &ValidationError{Message: "admin key is required"}
	}

	out := a.Client.Post(ctx, tokensPath, AdminHeader(adminKey), map[string]string{"user_id": userID})
	if !out.OK() {
		log.Error("failed to obtain user access token", slog.Int("status", out.StatusCode))
		return "", newResponseError(out)
	}

	var tr tokenResponse
	if err := out.Decode(&tr); err != nil {
		log.Error("token response could not be decoded", slog.String("error", err.Error()))
		return "", &AccessTokenError{Message: msgTokenNotFound}
	}
	if tr.UserID != userID {
		log.Warn("token issued for a different user", slog.String("token_user_id", tr.UserID))
		return "", &AccessTokenError{Message: msgUserIDMismatch}
	}
	if tr.Token == nil || *tr.Token == "" {
		log.Error("token missing from provider response")
		return "", &AccessTokenError{Message: msgTokenNotFound}
	}

	log.Debug("obtained user access token")
	return *tr.Token, nil
}

// TokenWithCredentials obtains an access token with a user's own email and
// password.
func (a *AuthClient) TokenWithCredentials(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", &ValidationError{Message: "email and password are required"}
	}

	out := a.Client.Post(ctx, tokensPath, nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if !out.OK() {
		slogx.FromContext(ctx).Error("failed to obtain access token with credentials",
			slog.Int("status", out.StatusCode),
		)
		return "", newResponseError(out)
	}

	var tr tokenResponse
	if err := out.Decode(&tr); err != nil || tr.Token == nil || *tr.Token == "" {
		return "", &AccessTokenError{Message: msgTokenNotFound}
	}
	return *tr.Token, nil
}
