// Package service holds the gateway workflows built on the OptScale clients.
// Services bind the admin secret so that handlers never see it.
package service

import (
	"context"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
)

// The interfaces below are satisfied by the pkg/optscale clients.

type TokenExchanger interface {
	UserToken(ctx context.Context, userID, adminKey string) (string, error)
}

type OrganizationAPI interface {
	Create(ctx context.Context, name, currency, userID, adminKey string) (optscale.Outcome, error)
	List(ctx context.Context, userToken string) (optscale.Outcome, error)
	ListForUser(ctx context.Context, userID, adminKey string) (optscale.Outcome, error)
}

type UserAPI interface {
	Create(ctx context.Context, params optscale.CreateUserParams, adminKey string) (optscale.Outcome, error)
	Get(ctx context.Context, userID, adminKey string) (optscale.Outcome, error)
	Delete(ctx context.Context, userID, adminKey string) (optscale.Outcome, error)
}

type InvitationAPI interface {
	Decline(ctx context.Context, userToken, invitationID string) (optscale.Outcome, error)
	List(ctx context.Context, params optscale.ListInvitationsParams) (optscale.Outcome, error)
}

type DatasourceAPI interface {
	Create(ctx context.Context, userToken, orgID string, params optscale.CloudAccountParams) (optscale.Outcome, error)
	List(ctx context.Context, userToken, orgID string) (optscale.Outcome, error)
}

var (
	_ TokenExchanger  = (*optscale.AuthClient)(nil)
	_ OrganizationAPI = (*optscale.OrganizationsClient)(nil)
	_ UserAPI         = (*optscale.UsersClient)(nil)
	_ InvitationAPI   = (*optscale.InvitationsClient)(nil)
	_ DatasourceAPI   = (*optscale.DatasourcesClient)(nil)
)
