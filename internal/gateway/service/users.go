package service

import (
	"context"
	"log/slog"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

type UserService struct {
	Users    UserAPI
	AdminKey string
}

// Create registers a user directly, already verified. Invited users go
// through InvitationService.RegisterInvitedUser instead.
func (s *UserService) Create(ctx context.Context, email, displayName, password string) (optscale.Outcome, error) {
	out, err := s.Users.Create(ctx, optscale.CreateUserParams{
		Email:       email,
		DisplayName: displayName,
		Password:    password,
		Verified:    true,
	}, s.AdminKey)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create user",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return optscale.Outcome{}, err
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (optscale.Outcome, error) {
	return s.Users.Get(ctx, userID, s.AdminKey)
}
