package http

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/service"
)

type OrganizationsHandler struct {
	OrganizationService *service.OrganizationService
}

// HandleCreate godoc
//
//	@Summary		Create Organization
//	@Description	Creates an organization owned by the given user. The currency must be an ISO 4217 code.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		CreateOrganizationRequest	true	"org_name, user_id, currency"
//	@Success		201		{object}	map[string]any				"the organization as returned by OptScale"
//	@Failure		400		{object}	httpx.Problem
//	@Failure		401		{object}	httpx.Problem
//	@Failure		403		{object}	httpx.Problem
//	@Router			/organizations [post].
func (h *OrganizationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.OrganizationService.Create(r.Context(), req.OrgName, req.Currency, req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOutcome(w, out, http.StatusCreated)
}

// HandleList godoc
//
//	@Summary		List Organizations
//	@Description	Lists the organizations owned by the given user.
//	@Tags			Organizations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			user_id	query		string			true	"user id"
//	@Success		200		{object}	map[string]any	"{\"organizations\": [...]}"
//	@Failure		400		{object}	httpx.Problem
//	@Failure		401		{object}	httpx.Problem
//	@Failure		403		{object}	httpx.Problem
//	@Router			/organizations [get].
func (h *OrganizationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if err := (validation.Errors{
		"user_id": validation.Validate(userID, validation.Required),
	}).Filter(); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.OrganizationService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOutcome(w, out, http.StatusOK)
}
