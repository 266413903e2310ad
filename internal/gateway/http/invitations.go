package http

import (
	"net/http"

	"github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/service"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/httpx"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleRegister godoc
//
//	@Summary		Register Invited User
//	@Description	Creates an unverified user for an email that holds a pending OptScale invitation.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateUserRequest	true	"email, display_name, password"
//	@Success		201		{object}	map[string]any		"the user as returned by OptScale"
//	@Failure		400		{object}	httpx.Problem
//	@Failure		403		{object}	httpx.Problem		"no invitation for this email"
//	@Router			/invitations/users [post].
func (h *InvitationsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.InvitationService.RegisterInvitedUser(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOutcome(w, out, http.StatusCreated)
}

// HandleDecline godoc
//
//	@Summary		Decline Invitation
//	@Description	Declines an invitation on behalf of the user. If the user is left without
//	@Description	invitations and organizations they are removed afterwards.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			invite_id	path		string						true	"invitation id"
//	@Param			body		body		DeclineInvitationRequest	true	"user_id"
//	@Success		200			{object}	DeclineInvitationResponse
//	@Failure		400			{object}	httpx.Problem
//	@Failure		401			{object}	httpx.Problem
//	@Failure		403			{object}	httpx.Problem
//	@Router			/invitations/users/invites/{invite_id}/decline [post].
func (h *InvitationsHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	var req DeclineInvitationRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.InvitationService.Decline(r.Context(), req.UserID, r.PathValue("invite_id")); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, DeclineInvitationResponse{Response: "Invitation declined"})
}
