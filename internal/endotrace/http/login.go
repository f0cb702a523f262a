package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/pkg/endosdk"
	"github.com/clinsuite/endotrace/pkg/httpx"
)

// LoginHandler authenticates credentials and issues the session cookie.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/login
//
//	@Summary		Login
//	@Description	Validates a username/password pair and sets the session cookie. Unknown users and wrong passwords return the same generic failure.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		endosdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	endosdk.SessionResponse	"authenticated, username, role"
//	@Failure		400		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req endosdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, endosdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Username and password are required",
		})
		return
	}

	session, token, err := h.AuthService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	httpx.WriteJSON(w, http.StatusOK, endosdk.SessionResponse{
		Authenticated: true,
		Username:      session.Username,
		Role:          session.Role.String(),
	})
}

// LogoutHandler revokes the current session.
type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/logout
//
//	@Summary		Logout
//	@Description	Deletes the server-side session and clears the cookie. Logging out twice is not an error.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"Session revoked"
//	@Router			/v1/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if session := sessionFromContext(ctx); session != nil {
		if err := h.AuthService.Logout(ctx, *session); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
