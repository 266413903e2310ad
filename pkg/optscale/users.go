package optscale

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

const usersPath = "/auth/v2/users"

// UsersClient manages provider users with the admin secret.
type UsersClient struct {
	Client *Client
}

func NewUsersClient(c *Client) *UsersClient {
	return &UsersClient{Client: c}
}

// CreateUserParams is the payload for a new provider user.
type CreateUserParams struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Verified    bool   `json:"verified"`
}

func (u *UsersClient) Create(ctx context.Context, params CreateUserParams, adminKey string) (Outcome, error) {
	log := slogx.FromContext(ctx).With(slog.String("email", params.Email))

	out := u.Client.Post(ctx, usersPath, AdminHeader(adminKey), params)
	if !out.OK() {
		log.Error("failed to create user", slog.Int("status", out.StatusCode))
		return Outcome{}, newResponseError(out)
	}

	log.Info("user created", slog.Bool("verified", params.Verified))
	return out, nil
}

func (u *UsersClient) Get(ctx context.Context, userID, adminKey string) (Outcome, error) {
	out := u.Client.Get(ctx, userPath(userID), AdminHeader(adminKey), nil)
	if !out.OK() {
		slogx.FromContext(ctx).Error("failed to get user",
			slog.String("user_id", userID),
			slog.Int("status", out.StatusCode),
		)
		return Outcome{}, newResponseError(out)
	}
	return out, nil
}

func (u *UsersClient) Delete(ctx context.Context, userID, adminKey string) (Outcome, error) {
	log := slogx.FromContext(ctx).With(slog.String("user_id", userID))

	out := u.Client.Delete(ctx, userPath(userID), AdminHeader(adminKey), nil)
	if !out.OK() {
		log.Error("failed to delete user", slog.Int("status", out.StatusCode))
		return Outcome{}, newResponseError(out)
	}

	log.Info("user deleted")
	return out, nil
}

func userPath(userID string) string {
	return usersPath + "/" + url.PathEscape(userID)
}
