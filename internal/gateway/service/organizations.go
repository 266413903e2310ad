package service

import (
	"context"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
)

type OrganizationService struct {
	Organizations OrganizationAPI
	AdminKey      string
}

// Create creates an organization owned by userID.
func (s *OrganizationService) Create(ctx context.Context, name, currency, userID string) (optscale.Outcome, error) {
	return s.Organizations.Create(ctx, name, currency, userID, s.AdminKey)
}

// ListForUser lists the organizations owned by userID.
func (s *OrganizationService) ListForUser(ctx context.Context, userID string) (optscale.Outcome, error) {
	return s.Organizations.ListForUser(ctx, userID, s.AdminKey)
}
