package http

import (
	"net/http"

	"github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/service"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Create User
//	@Description	Creates a verified OptScale user.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		CreateUserRequest	true	"email, display_name, password"
//	@Success		201		{object}	map[string]any		"the user as returned by OptScale"
//	@Failure		400		{object}	httpx.Problem
//	@Failure		401		{object}	httpx.Problem
//	@Failure		403		{object}	httpx.Problem
//	@Router			/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.UserService.Create(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOutcome(w, out, http.StatusCreated)
}

// HandleGet godoc
//
//	@Summary		Get User
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			user_id	path		string			true	"user id"
//	@Success		200		{object}	map[string]any	"the user as returned by OptScale"
//	@Failure		401		{object}	httpx.Problem
//	@Failure		404		{object}	httpx.Problem
//	@Router			/users/{user_id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	out, err := h.UserService.Get(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOutcome(w, out, http.StatusOK)
}
