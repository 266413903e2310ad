package gatewaysdk

import (
	"context"
	"net/http"
)

// RegisterInvitedUser signs up a user who holds a pending invitation.
// No token is needed; the gateway answers 403 when there is no invitation.
func (c *SDKClient) RegisterInvitedUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.versioned("/invitations/users"), req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
