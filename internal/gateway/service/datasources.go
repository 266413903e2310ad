package service

import (
	"context"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
)

// DatasourceService manages cloud accounts on behalf of a user, obtaining
// the user's token with the admin secret for every call.
type DatasourceService struct {
	Auth        TokenExchanger
	Datasources DatasourceAPI
	AdminKey    string
}

func (s *DatasourceService) Create(ctx context.Context, userID, orgID string, params optscale.CloudAccountParams) (optscale.Outcome, error) {
	token, err := s.Auth.UserToken(ctx, userID, s.AdminKey)
	if err != nil {
		return optscale.Outcome{}, err
	}
	return s.Datasources.Create(ctx, token, orgID, params)
}

func (s *DatasourceService) List(ctx context.Context, userID, orgID string) (optscale.Outcome, error) {
	token, err := s.Auth.UserToken(ctx, userID, s.AdminKey)
	if err != nil {
		return optscale.Outcome{}, err
	}
	return s.Datasources.List(ctx, token, orgID)
}
