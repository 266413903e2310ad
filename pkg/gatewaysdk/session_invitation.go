package gatewaysdk

import (
	"context"
	"net/http"
	"net/url"
)

// DeclineInvitation declines inviteID on behalf of userID. The gateway may
// remove the user afterwards if nothing else ties them to OptScale.
func (s *Session) DeclineInvitation(ctx context.Context, userID, inviteID string) (*DeclineInvitationResponse, error) {
	path := s.client.versioned("/invitations/users/invites/" + url.PathEscape(inviteID) + "/decline")
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, map[string]string{"user_id": userID})
	if err != nil {
		return nil, err
	}

	var out DeclineInvitationResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
