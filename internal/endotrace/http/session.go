package http

import (
	"context"
	"net/http"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/pkg/endosdk"
	"github.com/clinsuite/endotrace/pkg/httpx"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "endotrace_session"

type sessionCtxKey struct{}

// SessionMiddleware resolves the session cookie into a session identity and
// attaches it to the request context. Requests without a valid session pass
// through with no identity; the per-route Authorize guards decide access.
func SessionMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := auth.SessionByToken(r.Context(), cookie.Value)
			if err != nil {
				// Stale cookie from a revoked session; treat as anonymous.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, &session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromContext returns the resolved session, or nil when the request is
// anonymous.
func sessionFromContext(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*domain.Session)
	return s
}

// SessionHandler reports the current identity.
type SessionHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles GET /v1/session
//
//	@Summary		Current session
//	@Description	Returns the identity attached to the session cookie, or authenticated=false.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	endosdk.SessionResponse	"authenticated, username, role"
//	@Router			/v1/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	if session == nil {
		httpx.WriteJSON(w, http.StatusOK, endosdk.SessionResponse{Authenticated: false})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, endosdk.SessionResponse{
		Authenticated: true,
		Username:      session.Username,
		Role:          session.Role.String(),
	})
}
