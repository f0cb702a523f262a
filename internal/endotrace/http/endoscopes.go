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

// EndoscopesHandler handles the device inventory endpoints. Writes are the
// biomedical role's territory; reads are open to every role, since report
// authors pick the device they sterilized from the inventory.
type EndoscopesHandler struct {
	EndoscopeService *service.EndoscopeService
}

func endoscopeInfo(e domain.Endoscope) endosdk.EndoscopeInfo {
	return endosdk.EndoscopeInfo{
		ID:           e.ID,
		Designation:  e.Designation,
		Marque:       e.Marque,
		Modele:       e.Modele,
		NumeroSerie:  e.NumeroSerie,
		Etat:         string(e.Etat),
		Localisation: string(e.Localisation),
		Observation:  e.Observation,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func endoscopeInput(req endosdk.EndoscopeRequest) service.EndoscopeInput {
	return service.EndoscopeInput{
		Designation:  req.Designation,
		Marque:       req.Marque,
		Modele:       req.Modele,
		NumeroSerie:  req.NumeroSerie,
		Etat:         domain.EndoscopeState(req.Etat),
		Localisation: domain.Location(req.Localisation),
		Observation:  req.Observation,
	}
}

// HandleList handles GET /v1/endoscopes
//
//	@Summary		List endoscopes
//	@Description	Returns the device inventory. Any authenticated role.
//	@Tags			Endoscopes
//	@Produce		json
//	@Success		200	{object}	endosdk.ListEndoscopesResponse	"List of devices"
//	@Failure		401	{object}	endosdk.ErrorResponse			"error, error_description"
//	@Router			/v1/endoscopes [get].
func (h *EndoscopesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.Roles...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	endoscopes, err := h.EndoscopeService.ListAll(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := endosdk.ListEndoscopesResponse{Endoscopes: make([]endosdk.EndoscopeInfo, len(endoscopes))}
	for i, e := range endoscopes {
		response.Endoscopes[i] = endoscopeInfo(e)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet handles GET /v1/endoscopes/{id}
//
//	@Summary		Get endoscope
//	@Description	Returns one inventory record. Any authenticated role.
//	@Tags			Endoscopes
//	@Produce		json
//	@Param			id	path		string					true	"Endoscope ID (ULID)"
//	@Success		200	{object}	endosdk.EndoscopeInfo	"Device"
//	@Failure		401	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/endoscopes/{id} [get].
func (h *EndoscopesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.Roles...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	e, err := h.EndoscopeService.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, endoscopeInfo(e))
}

// HandleCreate handles POST /v1/endoscopes
//
//	@Summary		Register endoscope
//	@Description	Adds a device to the inventory. The serial number must be unique. Biomedical only.
//	@Tags			Endoscopes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		endosdk.EndoscopeRequest	true	"New device"
//	@Success		201		{object}	endosdk.EndoscopeInfo		"Created device"
//	@Failure		400		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	endosdk.ErrorResponse		"error, error_description, allowed_roles"
//	@Failure		409		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/endoscopes [post].
func (h *EndoscopesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFromContext(ctx)

	if err := service.Authorize(session, domain.RoleBiomedical); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req endosdk.EndoscopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	e, err := h.EndoscopeService.Create(ctx, endoscopeInput(req), session.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, endoscopeInfo(e))
}

// HandleUpdate handles PUT /v1/endoscopes/{id}
//
//	@Summary		Update endoscope
//	@Description	Replaces every writable field of a device. Concurrent edits are last-write-wins. Biomedical only.
//	@Tags			Endoscopes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Endoscope ID (ULID)"
//	@Param			request	body		endosdk.EndoscopeRequest	true	"New field values"
//	@Success		200		{object}	endosdk.EndoscopeInfo		"Updated device"
//	@Failure		400		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	endosdk.ErrorResponse		"error, error_description, allowed_roles"
//	@Failure		404		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	endosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/endoscopes/{id} [put].
func (h *EndoscopesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.RoleBiomedical); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req endosdk.EndoscopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	e, err := h.EndoscopeService.Update(ctx, r.PathValue("id"), endoscopeInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, endoscopeInfo(e))
}

// HandleDelete handles DELETE /v1/endoscopes/{id}
//
//	@Summary		Delete endoscope
//	@Description	Removes a device from the inventory. Past sterilization reports keep their snapshot of it. Biomedical only.
//	@Tags			Endoscopes
//	@Produce		json
//	@Param			id	path	string	true	"Endoscope ID (ULID)"
//	@Success		204	"Device deleted"
//	@Failure		401	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	endosdk.ErrorResponse	"error, error_description, allowed_roles"
//	@Failure		404	{object}	endosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/endoscopes/{id} [delete].
func (h *EndoscopesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := service.Authorize(sessionFromContext(ctx), domain.RoleBiomedical); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.EndoscopeService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
