package optscale

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

const invitesPath = "/restapi/v2/invites"

// InvitationsClient reads and answers organization invitations.
type InvitationsClient struct {
	Client *Client

	// AdminKey is used when invitations are looked up by email.
	AdminKey string
}

func NewInvitationsClient(c *Client, adminKey string) *InvitationsClient {
	return &InvitationsClient{Client: c, AdminKey: adminKey}
}

// Decline declines invitationID on behalf of the owner of userToken.
func (i *InvitationsClient) Decline(ctx context.Context, userToken, invitationID string) (Outcome, error) {
	log := slogx.FromContext(ctx).With(slog.String("invitation_id", invitationID))

	out := i.Client.Patch(ctx, invitesPath+"/"+url.PathEscape(invitationID), BearerHeader(userToken),
		map[string]string{"action": "decline"})
	if !out.OK() {
		log.Error("failed to decline invitation", slog.Int("status", out.StatusCode))
		return Outcome{}, newResponseError(out)
	}

	log.Info("invitation declined")
	return out, nil
}

// ListInvitationsParams identifies whose invitations to list. Exactly one of
// the fields is needed; Email wins when both are set.
type ListInvitationsParams struct {
	UserToken string
	Email     string
}

func (i *InvitationsClient) List(ctx context.Context, params ListInvitationsParams) (Outcome, error) {
	var (
		headers map[string]string
		query   map[string]string
	)
	switch {
	case params.Email != "":
		headers = AdminHeader(i.AdminKey)
		query = map[string]string{"email": params.Email}
	case params.UserToken != "":
		headers = BearerHeader(params.UserToken)
	default:
		return Outcome{}, ErrMissingInvitationIdentity
	}

	out := i.Client.Get(ctx, invitesPath, headers, query)
	if !out.OK() {
		slogx.FromContext(ctx).Error("failed to list invitations", slog.Int("status", out.StatusCode))
		return Outcome{}, newResponseError(out)
	}
	return out, nil
}

// Invitation is the subset of the provider's invite we read.
type Invitation struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	OwnerID        string `json:"owner_id"`
	Organization   string `json:"organization"`
	OrganizationID string `json:"organization_id"`
}

// DecodeInvitations reads the {"invites": [...]} list body.
func DecodeInvitations(out Outcome) ([]Invitation, error) {
	var body struct {
		Invites []Invitation `json:"invites"`
	}
	if err := json.Unmarshal(out.Body(), &body); err != nil {
		return nil, err
	}
	return body.Invites, nil
}
