package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

var ErrInvitationNotFound = errors.New("invitation not found")

// InvitationService handles users who arrive through, or turn down, an
// organization invitation.
type InvitationService struct {
	Auth          TokenExchanger
	Invitations   InvitationAPI
	Organizations OrganizationAPI
	Users         UserAPI
	AdminKey      string

	background sync.WaitGroup
}

// ValidateUserDelete reports whether the owner of userToken has neither
// pending invitations nor organizations. Both lookups run concurrently; any
// failure means false.
func (s *InvitationService) ValidateUserDelete(ctx context.Context, userToken string) (bool, error) {
	var invites, orgs optscale.Outcome

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.Invitations.List(gctx, optscale.ListInvitationsParams{UserToken: userToken})
		invites = out
		return err
	})
	g.Go(func() error {
		out, err := s.Organizations.List(gctx, userToken)
		orgs = out
		return err
	})
	if err := g.Wait(); err != nil {
		return false, err
	}

	return isEmptyList(invites, "invites") && isEmptyList(orgs, "organizations"), nil
}

// RemoveUser deletes userID only if it is safe to do so. It never deletes
// when the check fails or cannot be completed, and returns whether a delete
// actually happened.
func (s *InvitationService) RemoveUser(ctx context.Context, userID, userToken string) bool {
	log := slogx.FromContext(ctx).With(slog.String("user_id", userID))

	ok, err := s.ValidateUserDelete(ctx, userToken)
	if err != nil {
		log.Error("user delete validation failed", slog.String("error", err.Error()))
		return false
	}
	if !ok {
		log.Info("user still has invitations or organizations, not deleting")
		return false
	}

	if _, err := s.Users.Delete(ctx, userID, s.AdminKey); err != nil {
		log.Error("failed to delete user", slog.String("error", err.Error()))
		return false
	}

	log.Info("user removed")
	return true
}

// RegisterInvitedUser creates an unverified user, provided the provider
// holds an invitation for email.
func (s *InvitationService) RegisterInvitedUser(ctx context.Context, email, displayName, password string) (optscale.Outcome, error) {
	log := slogx.FromContext(ctx).With(slog.String("email", email))

	out, err := s.Invitations.List(ctx, optscale.ListInvitationsParams{Email: email})
	if err != nil {
		return optscale.Outcome{}, err
	}
	invites, err := optscale.DecodeInvitations(out)
	if err != nil || len(invites) == 0 {
		log.Warn("no invitation for email")
		return optscale.Outcome{}, ErrInvitationNotFound
	}

	out, err = s.Users.Create(ctx, optscale.CreateUserParams{
		Email:       email,
		DisplayName: displayName,
		Password:    password,
		Verified:    false,
	}, s.AdminKey)
	if err != nil {
		log.Error("failed to register invited user", slog.String("error", err.Error()))
		return optscale.Outcome{}, err
	}

	log.Info("invited user registered")
	return out, nil
}

// Decline declines invitationID for userID and then, in the background,
// removes the user if nothing else ties them to the provider.
func (s *InvitationService) Decline(ctx context.Context, userID, invitationID string) (optscale.Outcome, error) {
	token, err := s.Auth.UserToken(ctx, userID, s.AdminKey)
	if err != nil {
		return optscale.Outcome{}, err
	}

	out, err := s.Invitations.Decline(ctx, token, invitationID)
	if err != nil {
		return optscale.Outcome{}, err
	}

	// The removal outlives the request.
	bg := context.WithoutCancel(ctx)
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		s.RemoveUser(bg, userID, token)
	}()

	return out, nil
}

// Wait blocks until background removals have finished or ctx is done.
func (s *InvitationService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.background.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// isEmptyList reports whether body is exactly {key: []}.
func isEmptyList(out optscale.Outcome, key string) bool {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(out.Body(), &body); err != nil {
		return false
	}
	raw, ok := body[key]
	if !ok {
		return false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return false
	}
	return items != nil && len(items) == 0
}
