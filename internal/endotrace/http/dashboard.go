package http

import (
	"net/http"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/pkg/endosdk"
	"github.com/clinsuite/endotrace/pkg/httpx"
)

// recentBreakdownDays is the dashboard's lookback window for breakdown reports.
const recentBreakdownDays = 7

// DashboardHandler serves the fleet overview.
type DashboardHandler struct {
	ReportingService *service.ReportingService
}

// ServeHTTP handles GET /v1/dashboard
//
//	@Summary		Dashboard
//	@Description	Returns fleet totals by state and location, the malfunction rate, and breakdown reports from the last 7 days. Any authenticated role.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	endosdk.DashboardResponse	"Fleet overview"
//	@Failure		401	{object}	endosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.Roles...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	stats, err := h.ReportingService.Dashboard(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	percent, broken, _, err := h.ReportingService.MalfunctionPercentage(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	breakdowns, err := h.ReportingService.RecentBreakdowns(ctx, recentBreakdownDays)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	statusCounts := make(map[string]int, len(stats.StatusCounts))
	for state, n := range stats.StatusCounts {
		statusCounts[string(state)] = n
	}
	locationCounts := make(map[string]int, len(stats.LocationCounts))
	for loc, n := range stats.LocationCounts {
		locationCounts[string(loc)] = n
	}
	recent := make([]endosdk.ReportInfo, len(breakdowns))
	for i, rep := range breakdowns {
		recent[i] = reportInfo(rep)
	}

	httpx.WriteJSON(w, http.StatusOK, endosdk.DashboardResponse{
		Total:               stats.Total,
		StatusCounts:        statusCounts,
		LocationCounts:      locationCounts,
		MalfunctionPercent:  percent,
		BrokenCount:         broken,
		AlertThresholdMet:   percent > service.AlertThresholdPercent,
		RecentBreakdowns:    recent,
		RecentBreakdownDays: recentBreakdownDays,
	})
}
