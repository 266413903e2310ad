package http

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/service"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
)

type DatasourcesHandler struct {
	DatasourceService *service.DatasourceService
}

// HandleCreate godoc
//
//	@Summary		Create Datasource
//	@Description	Connects a cloud account to one of the user's organizations.
//	@Tags			Datasources
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		CreateDatasourceRequest	true	"datasource"
//	@Success		201		{object}	map[string]any			"the cloud account as returned by OptScale"
//	@Failure		400		{object}	httpx.Problem
//	@Failure		401		{object}	httpx.Problem
//	@Failure		403		{object}	httpx.Problem
//	@Router			/datasources [post].
func (h *DatasourcesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateDatasourceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.DatasourceService.Create(r.Context(), req.UserID, req.OrganizationID, optscale.CloudAccountParams{
		Name:                   req.Name,
		Type:                   req.Type,
		Config:                 req.Config,
		AutoImport:             req.AutoImport,
		ProcessRecommendations: req.ProcessRecommendations,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOutcome(w, out, http.StatusCreated)
}

// HandleList godoc
//
//	@Summary		List Datasources
//	@Tags			Datasources
//	@Produce		json
//	@Security		BearerAuth
//	@Param			user_id			query		string			true	"user id"
//	@Param			organization_id	query		string			true	"organization id"
//	@Success		200				{object}	map[string]any	"{\"cloud_accounts\": [...]}"
//	@Failure		400				{object}	httpx.Problem
//	@Failure		401				{object}	httpx.Problem
//	@Failure		403				{object}	httpx.Problem
//	@Router			/datasources [get].
func (h *DatasourcesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, orgID := q.Get("user_id"), q.Get("organization_id")
	if err := (validation.Errors{
		"user_id":         validation.Validate(userID, validation.Required),
		"organization_id": validation.Validate(orgID, validation.Required),
	}).Filter(); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.DatasourceService.List(r.Context(), userID, orgID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOutcome(w, out, http.StatusOK)
}
