package http

import (
	"net/http"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
	"github.com/clinsuite/endotrace/pkg/endosdk"
	"github.com/clinsuite/endotrace/pkg/httpx"
)

// ArchivesHandler serves the filterable archive views and their printable
// HTML exports.
type ArchivesHandler struct {
	EndoscopeService *service.EndoscopeService
	ReportService    *service.ReportService
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// HandleReports handles GET /v1/archives/reports
//
//	@Summary		Report archive
//	@Description	Returns sterilization reports filtered by operator, physician, device state and inclusive date range, optionally sorted. format=html yields a printable document. Any authenticated role.
//	@Tags			Archives
//	@Produce		json
//	@Param			operateur	query		[]string	false	"Operator filter (repeatable, OR'd)"
//	@Param			medecin		query		[]string	false	"Physician filter (repeatable, OR'd)"
//	@Param			etat		query		[]string	false	"Device state filter (repeatable, OR'd)"
//	@Param			from		query		string		false	"Inclusive lower date bound (YYYY-MM-DD)"
//	@Param			to			query		string		false	"Inclusive upper date bound (YYYY-MM-DD)"
//	@Param			sort		query		string		false	"Sort column"
//	@Param			desc		query		string		false	"true for descending order"
//	@Param			format		query		string		false	"html for the printable export"
//	@Success		200			{object}	endosdk.ListReportsResponse	"Filtered reports"
//	@Failure		400			{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		401			{object}	endosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/archives/reports [get].
func (h *ArchivesHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.Roles...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	params := r.URL.Query()

	q := store.ReportQuery{
		Operateurs: params["operateur"],
		Medecins:   params["medecin"],
		SortBy:     params.Get("sort"),
		SortDesc:   params.Get("desc") == "true",
	}
	for _, etat := range params["etat"] {
		q.Etats = append(q.Etats, domain.EndoscopeState(etat))
	}

	var err error
	if q.From, err = parseDateParam(params.Get("from")); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, endosdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "from: expected YYYY-MM-DD",
		})
		return
	}
	if q.To, err = parseDateParam(params.Get("to")); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, endosdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "to: expected YYYY-MM-DD",
		})
		return
	}

	reports, err := h.ReportService.Query(ctx, q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if params.Get("format") == "html" {
		doc, err := service.RenderReportArchiveHTML(reports)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(doc))
		return
	}

	response := endosdk.ListReportsResponse{Reports: make([]endosdk.ReportInfo, len(reports))}
	for i, rep := range reports {
		response.Reports[i] = reportInfo(rep)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleEndoscopes handles GET /v1/archives/endoscopes
//
//	@Summary		Inventory archive
//	@Description	Returns the device inventory filtered by state and location, optionally sorted. format=html yields a printable document. Biomedical or admin.
//	@Tags			Archives
//	@Produce		json
//	@Param			etat			query		[]string	false	"State filter (repeatable, OR'd)"
//	@Param			localisation	query		[]string	false	"Location filter (repeatable, OR'd)"
//	@Param			sort			query		string		false	"Sort column"
//	@Param			desc			query		string		false	"true for descending order"
//	@Param			format			query		string		false	"html for the printable export"
//	@Success		200				{object}	endosdk.ListEndoscopesResponse	"Filtered devices"
//	@Failure		400				{object}	endosdk.ErrorResponse			"error, error_description"
//	@Failure		401				{object}	endosdk.ErrorResponse			"error, error_description"
//	@Failure		403				{object}	endosdk.ErrorResponse			"error, error_description, allowed_roles"
//	@Router			/v1/archives/endoscopes [get].
func (h *ArchivesHandler) HandleEndoscopes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.RoleBiomedical, domain.RoleAdmin); err != nil {
		writeServiceError(w, r, err)
		return
	}

	params := r.URL.Query()

	q := store.EndoscopeQuery{
		SortBy:   params.Get("sort"),
		SortDesc: params.Get("desc") == "true",
	}
	for _, etat := range params["etat"] {
		q.Etats = append(q.Etats, domain.EndoscopeState(etat))
	}
	for _, loc := range params["localisation"] {
		q.Localisations = append(q.Localisations, domain.Location(loc))
	}

	endoscopes, err := h.EndoscopeService.Query(ctx, q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if params.Get("format") == "html" {
		doc, err := service.RenderEndoscopeArchiveHTML(endoscopes)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(doc))
		return
	}

	response := endosdk.ListEndoscopesResponse{Endoscopes: make([]endosdk.EndoscopeInfo, len(endoscopes))}
	for i, e := range endoscopes {
		response.Endoscopes[i] = endoscopeInfo(e)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}
