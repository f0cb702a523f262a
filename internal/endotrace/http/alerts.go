package http

import (
	"net/http"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/pkg/endosdk"
	"github.com/clinsuite/endotrace/pkg/httpx"
)

// AlertsHandler fires the malfunction alert email on explicit request.
type AlertsHandler struct {
	ReportingService *service.ReportingService
	Notifier         *service.Notifier
}

// ServeHTTP handles POST /v1/alerts/malfunction
//
//	@Summary		Send malfunction alert
//	@Description	Emails the configured recipient when more than half the fleet is broken. Refused below the threshold. Admin or biomedical.
//	@Tags			Alerts
//	@Produce		json
//	@Success		200	{object}	endosdk.AlertResponse	"sent, recipient, malfunction_percent"
//	@Failure		401	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	endosdk.ErrorResponse	"error, error_description, allowed_roles"
//	@Failure		409	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		503	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/alerts/malfunction [post].
func (h *AlertsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.RoleAdmin, domain.RoleBiomedical); err != nil {
		writeServiceError(w, r, err)
		return
	}

	percent, broken, total, err := h.ReportingService.MalfunctionPercentage(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if percent <= service.AlertThresholdPercent {
		httpx.WriteJSON(w, http.StatusConflict, endosdk.ErrorResponse{
			Error:            "threshold_not_reached",
			ErrorDescription: "The malfunction rate is not above the alert threshold",
		})
		return
	}

	if err := h.Notifier.SendMalfunctionAlert(ctx, percent, broken, total); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, endosdk.AlertResponse{
		Sent:               true,
		Recipient:          h.Notifier.Config.Recipient,
		MalfunctionPercent: percent,
	})
}
