package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/pkg/endosdk"
	"github.com/clinsuite/endotrace/pkg/httpx"
)

// UsersHandler handles the user administration endpoints. Every operation is
// admin-only.
type UsersHandler struct {
	UserService *service.UserService
}

func userInfo(u domain.User) endosdk.UserInfo {
	return endosdk.UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// HandleList handles GET /v1/users
//
//	@Summary		List users
//	@Description	Returns every user account in creation order. Admin only.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	endosdk.ListUsersResponse	"List of users"
//	@Failure		401	{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	endosdk.ErrorResponse		"error, error_description, allowed_roles"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.RoleAdmin); err != nil {
		writeServiceError(w, r, err)
		return
	}

	users, err := h.UserService.ListAll(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := endosdk.ListUsersResponse{Users: make([]endosdk.UserInfo, len(users))}
	for i, u := range users {
		response.Users[i] = userInfo(u)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleCreate handles POST /v1/users
//
//	@Summary		Create user
//	@Description	Registers a new account with one of the roles admin, biomedical or sterilisation. Admin only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		endosdk.CreateUserRequest	true	"New account"
//	@Success		201		{object}	endosdk.UserInfo			"Created user"
//	@Failure		400		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	endosdk.ErrorResponse		"error, error_description, allowed_roles"
//	@Failure		409		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.RoleAdmin); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req endosdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	user, err := h.UserService.Create(ctx, req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, userInfo(user))
}

// HandleUpdate handles PATCH /v1/users/{id}
//
//	@Summary		Update user
//	@Description	Changes the role and/or resets the password of an account. Fields left empty are unchanged. Admin only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID (ULID)"
//	@Param			request	body		endosdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	endosdk.UserInfo			"Updated user"
//	@Failure		400		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	endosdk.ErrorResponse		"error, error_description, allowed_roles"
//	@Failure		404		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users/{id} [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.RoleAdmin); err != nil {
		writeServiceError(w, r, err)
		return
	}

	id := r.PathValue("id")

	var req endosdk.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}
	if req.Role == "" && req.Password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, endosdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Nothing to update",
		})
		return
	}

	if req.Role != "" {
		if err := h.UserService.UpdateRole(ctx, id, domain.Role(req.Role)); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}
	if req.Password != "" {
		if err := h.UserService.UpdatePassword(ctx, id, req.Password); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	user, err := h.UserService.GetByID(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userInfo(user))
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary		Delete user
//	@Description	Removes an account and its sessions. The account named admin is protected. Admin only.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path	string	true	"User ID (ULID)"
//	@Success		204	"User deleted"
//	@Failure		401	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.RoleAdmin); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.UserService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
