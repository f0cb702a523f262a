package http

import (
	"errors"
	"net/http"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
	"github.com/clinsuite/endotrace/pkg/endosdk"
	"github.com/clinsuite/endotrace/pkg/httpx"
	"github.com/clinsuite/endotrace/pkg/slogx"
)

// writeServiceError maps service and store errors onto HTTP status codes and
// JSON error bodies. Every handler funnels its failures through here so the
// wire contract stays uniform.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	var ferr *service.ForbiddenError

	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, endosdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: verr.Field + ": " + verr.Reason,
		})

	case errors.As(err, &ferr):
		allowed := make([]string, len(ferr.Allowed))
		for i, role := range ferr.Allowed {
			allowed[i] = role.String()
		}
		httpx.WriteJSON(w, http.StatusForbidden, endosdk.ErrorResponse{
			Error:            "forbidden",
			ErrorDescription: "Role not permitted for this operation",
			AllowedRoles:     allowed,
		})

	case errors.Is(err, service.ErrUnauthenticated):
		httpx.WriteJSON(w, http.StatusUnauthorized, endosdk.ErrorResponse{
			Error:            "unauthenticated",
			ErrorDescription: "Login required",
		})

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, endosdk.ErrorResponse{
			Error:            "invalid_credentials",
			ErrorDescription: "Unknown username or wrong password",
		})

	case errors.Is(err, service.ErrProtectedUser):
		httpx.WriteJSON(w, http.StatusForbidden, endosdk.ErrorResponse{
			Error:            "protected_user",
			ErrorDescription: "This account cannot be deleted",
		})

	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, endosdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "No such record",
		})

	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteJSON(w, http.StatusConflict, endosdk.ErrorResponse{
			Error:            "already_exists",
			ErrorDescription: "A record with this identifier already exists",
		})

	case errors.Is(err, store.ErrInvalidSortKey):
		httpx.WriteJSON(w, http.StatusBadRequest, endosdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Unknown sort column",
		})

	case errors.Is(err, service.ErrNotConfigured):
		httpx.WriteJSON(w, http.StatusServiceUnavailable, endosdk.ErrorResponse{
			Error:            "notifier_unconfigured",
			ErrorDescription: "Email alerts are not configured on this deployment",
		})

	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err,
			"method", r.Method, "path", r.URL.Path)
		httpx.WriteJSON(w, http.StatusInternalServerError, endosdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Internal server error",
		})
	}
}

// writeBadJSON is the shared response for undecodable request bodies.
func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, endosdk.ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: "Invalid JSON in request body",
	})
}
