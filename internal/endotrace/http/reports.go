package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
	"github.com/clinsuite/endotrace/pkg/endosdk"
	"github.com/clinsuite/endotrace/pkg/httpx"
)

// ReportsHandler handles the sterilization report endpoints. Reports are
// written by sterilisation agents and biomedical engineers; admins may read
// everything and modify anything.
type ReportsHandler struct {
	ReportService *service.ReportService
}

func reportInfo(rep domain.SterilizationReport) endosdk.ReportInfo {
	return endosdk.ReportInfo{
		ID:                 rep.ID,
		NomOperateur:       rep.NomOperateur,
		Endoscope:          rep.Endoscope,
		NumeroSerie:        rep.NumeroSerie,
		MedecinResponsable: rep.MedecinResponsable,
		DateDesinfection:   rep.DateDesinfection.Format("2006-01-02"),
		TypeDesinfection:   string(rep.TypeDesinfection),
		Cycle:              string(rep.Cycle),
		TestEtancheite:     string(rep.TestEtancheite),
		HeureDebut:         rep.HeureDebut,
		HeureFin:           rep.HeureFin,
		ProcedureMedicale:  rep.ProcedureMedicale,
		Salle:              rep.Salle,
		TypeActe:           rep.TypeActe,
		EtatEndoscope:      string(rep.EtatEndoscope),
		NaturePanne:        rep.NaturePanne,
		CreatedBy:          rep.CreatedBy,
		CreatedAt:          rep.CreatedAt.Format(time.RFC3339),
	}
}

func reportInput(req endosdk.ReportRequest) (service.ReportInput, error) {
	in := service.ReportInput{
		EndoscopeID:        req.EndoscopeID,
		Endoscope:          req.Endoscope,
		NumeroSerie:        req.NumeroSerie,
		MedecinResponsable: req.MedecinResponsable,
		TypeDesinfection:   domain.DisinfectionType(req.TypeDesinfection),
		Cycle:              domain.CycleResult(req.Cycle),
		TestEtancheite:     domain.LeakTestResult(req.TestEtancheite),
		HeureDebut:         req.HeureDebut,
		HeureFin:           req.HeureFin,
		ProcedureMedicale:  req.ProcedureMedicale,
		Salle:              req.Salle,
		TypeActe:           req.TypeActe,
		EtatEndoscope:      domain.EndoscopeState(req.EtatEndoscope),
		NaturePanne:        req.NaturePanne,
	}
	if req.DateDesinfection != "" {
		date, err := time.Parse("2006-01-02", req.DateDesinfection)
		if err != nil {
			return in, domain.Invalid("date_desinfection", "expected YYYY-MM-DD")
		}
		in.DateDesinfection = date
	}
	return in, nil
}

// HandleList handles GET /v1/reports
//
//	@Summary		List reports
//	@Description	Returns sterilization reports. Sterilisation agents see their own reports by default; mine=false lifts that filter.
//	@Tags			Reports
//	@Produce		json
//	@Param			mine	query		string					false	"true (default for sterilisation role) restricts to own reports"
//	@Success		200		{object}	endosdk.ListReportsResponse	"List of reports"
//	@Failure		401		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	endosdk.ErrorResponse		"error, error_description, allowed_roles"
//	@Router			/v1/reports [get].
func (h *ReportsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFromContext(ctx)

	if err := service.Authorize(session, domain.Roles...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var q store.ReportQuery
	if session.Role == domain.RoleSterilisation && r.URL.Query().Get("mine") != "false" {
		q.CreatedBy = session.Username
	}

	reports, err := h.ReportService.Query(ctx, q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := endosdk.ListReportsResponse{Reports: make([]endosdk.ReportInfo, len(reports))}
	for i, rep := range reports {
		response.Reports[i] = reportInfo(rep)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet handles GET /v1/reports/{id}
//
//	@Summary		Get report
//	@Description	Returns one sterilization report.
//	@Tags			Reports
//	@Produce		json
//	@Param			id	path		string					true	"Report ID (ULID)"
//	@Success		200	{object}	endosdk.ReportInfo		"Report"
//	@Failure		401	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/reports/{id} [get].
func (h *ReportsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.Roles...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	rep, err := h.ReportService.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, reportInfo(rep))
}

// HandleCreate handles POST /v1/reports
//
//	@Summary		Submit report
//	@Description	Records a sterilization run. The endoscope designation and serial are snapshotted and the device state is updated in the same transaction.
//	@Tags			Reports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		endosdk.ReportRequest	true	"New report (endoscope_id required)"
//	@Success		201		{object}	endosdk.ReportInfo		"Created report"
//	@Failure		400		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	endosdk.ErrorResponse	"error, error_description, allowed_roles"
//	@Failure		404		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/reports [post].
func (h *ReportsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFromContext(ctx)

	if err := service.Authorize(session, domain.RoleSterilisation, domain.RoleBiomedical); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req endosdk.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	in, err := reportInput(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	rep, err := h.ReportService.Create(ctx, in, session.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, reportInfo(rep))
}

// HandleUpdate handles PUT /v1/reports/{id}
//
//	@Summary		Update report
//	@Description	Corrects a report in place. Sterilisation agents may only edit their own reports; biomedical and admin may edit any. The inventory is not touched.
//	@Tags			Reports
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Report ID (ULID)"
//	@Param			request	body		endosdk.ReportRequest	true	"New field values"
//	@Success		200		{object}	endosdk.ReportInfo		"Updated report"
//	@Failure		400		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/reports/{id} [put].
func (h *ReportsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFromContext(ctx)

	if err := service.Authorize(session, domain.Roles...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	id := r.PathValue("id")
	existing, err := h.ReportService.GetByID(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !service.CanModifyReport(session.Role, existing.CreatedBy, session.Username) {
		httpx.WriteJSON(w, http.StatusForbidden, endosdk.ErrorResponse{
			Error:            "forbidden",
			ErrorDescription: "You may only modify your own reports",
		})
		return
	}

	var req endosdk.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	in, err := reportInput(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	rep, err := h.ReportService.Update(ctx, id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, reportInfo(rep))
}

// HandleDelete handles DELETE /v1/reports/{id}
//
//	@Summary		Delete report
//	@Description	Removes a report. Sterilisation agents may only delete their own reports.
//	@Tags			Reports
//	@Produce		json
//	@Param			id	path	string	true	"Report ID (ULID)"
//	@Success		204	"Report deleted"
//	@Failure		401	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/reports/{id} [delete].
func (h *ReportsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFromContext(ctx)

	if err := service.Authorize(session, domain.Roles...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	id := r.PathValue("id")
	existing, err := h.ReportService.GetByID(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !service.CanModifyReport(session.Role, existing.CreatedBy, session.Username) {
		httpx.WriteJSON(w, http.StatusForbidden, endosdk.ErrorResponse{
			Error:            "forbidden",
			ErrorDescription: "You may only delete your own reports",
		})
		return
	}

	if err := h.ReportService.Delete(ctx, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
