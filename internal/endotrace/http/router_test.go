package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/service"
	"github.com/clinsuite/endotrace/internal/endotrace/store/drivers/sqlite"
	"github.com/clinsuite/endotrace/pkg/cryptox"
	"github.com/clinsuite/endotrace/pkg/endosdk"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "endotrace-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// newTestRouter wires a full router against a fresh database and seeds one
// user per role.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter("test", st, logger)
	router.AuthService = &service.AuthService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.EndoscopeService = &service.EndoscopeService{Store: st}
	router.ReportService = &service.ReportService{Store: st}
	router.ReportingService = &service.ReportingService{Store: st}
	router.Notifier = &service.Notifier{}
	router.ApplyRoutes()

	users := service.UserService{Store: st}
	ctx := t.Context()
	seed := []struct {
		username string
		role     domain.Role
	}{
		{"admin", domain.RoleAdmin},
		{"bio", domain.RoleBiomedical},
		{"ster1", domain.RoleSterilisation},
		{"ster2", domain.RoleSterilisation},
	}
	for _, s := range seed {
		_, err := users.Create(ctx, s.username, s.username+"-pw", s.role)
		require.NoError(t, err)
	}

	return router
}

// doJSON performs a request against the router and returns the recorder.
func doJSON(t *testing.T, router *Router, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// login authenticates a seeded user and returns the session cookie value.
func login(t *testing.T, router *Router, username string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/v1/login",
		endosdk.LoginRequest{Username: username, Password: username + "-pw"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			require.NotEmpty(t, c.Value)
			return c.Value
		}
	}
	t.Fatal("login response carried no session cookie")
	return ""
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestLoginLogoutFlow(t *testing.T) {
	router := newTestRouter(t)

	// Anonymous session check.
	rec := doJSON(t, router, http.MethodGet, "/v1/session", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[endosdk.SessionResponse](t, rec).Authenticated)

	cookie := login(t, router, "bio")

	rec = doJSON(t, router, http.MethodGet, "/v1/session", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	session := decode[endosdk.SessionResponse](t, rec)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "bio", session.Username)
	assert.Equal(t, "biomedical", session.Role)

	rec = doJSON(t, router, http.MethodPost, "/v1/logout", nil, cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The revoked cookie no longer resolves.
	rec = doJSON(t, router, http.MethodGet, "/v1/session", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[endosdk.SessionResponse](t, rec).Authenticated)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	router := newTestRouter(t)

	wrongPw := doJSON(t, router, http.MethodPost, "/v1/login",
		endosdk.LoginRequest{Username: "bio", Password: "nope"}, "")
	unknown := doJSON(t, router, http.MethodPost, "/v1/login",
		endosdk.LoginRequest{Username: "ghost", Password: "nope"}, "")

	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, decode[endosdk.ErrorResponse](t, wrongPw), decode[endosdk.ErrorResponse](t, unknown))
}

func TestRoleGates(t *testing.T) {
	router := newTestRouter(t)
	sterCookie := login(t, router, "ster1")
	adminCookie := login(t, router, "admin")

	// Anonymous requests to gated endpoints are rejected.
	rec := doJSON(t, router, http.MethodGet, "/v1/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Sterilisation cannot touch the inventory; the allowed roles are named.
	rec = doJSON(t, router, http.MethodPost, "/v1/endoscopes", endosdk.EndoscopeRequest{}, sterCookie)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, []string{"biomedical"}, decode[endosdk.ErrorResponse](t, rec).AllowedRoles)

	// Admin cannot submit reports.
	rec = doJSON(t, router, http.MethodPost, "/v1/reports", endosdk.ReportRequest{}, adminCookie)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.ElementsMatch(t, []string{"sterilisation", "biomedical"},
		decode[endosdk.ErrorResponse](t, rec).AllowedRoles)

	// Non-admins cannot manage users.
	rec = doJSON(t, router, http.MethodGet, "/v1/users", nil, sterCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Every role may read the dashboard.
	rec = doJSON(t, router, http.MethodGet, "/v1/dashboard", nil, sterCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func validEndoscopeRequest(serie string) endosdk.EndoscopeRequest {
	return endosdk.EndoscopeRequest{
		Designation:  "Gastroscope",
		Marque:       "Olympus",
		Modele:       "GIF-H190",
		NumeroSerie:  serie,
		Etat:         "fonctionnel",
		Localisation: "stock",
	}
}

func validReportRequest(endoscopeID string) endosdk.ReportRequest {
	return endosdk.ReportRequest{
		EndoscopeID:        endoscopeID,
		MedecinResponsable: "Dr. Dupont",
		DateDesinfection:   "2026-08-20",
		TypeDesinfection:   "automatique",
		Cycle:              "complet",
		TestEtancheite:     "réussi",
		HeureDebut:         "08:30",
		HeureFin:           "09:15",
		Salle:              "Salle 2",
		TypeActe:           "Diagnostic",
		EtatEndoscope:      "fonctionnel",
	}
}

func TestEndoscopeAndReportFlow(t *testing.T) {
	router := newTestRouter(t)
	bioCookie := login(t, router, "bio")
	sterCookie := login(t, router, "ster1")

	// Biomedical registers a device.
	rec := doJSON(t, router, http.MethodPost, "/v1/endoscopes", validEndoscopeRequest("SN-001"), bioCookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	device := decode[endosdk.EndoscopeInfo](t, rec)
	assert.Equal(t, "bio", device.CreatedBy)

	// Duplicate serial is refused.
	rec = doJSON(t, router, http.MethodPost, "/v1/endoscopes", validEndoscopeRequest("SN-001"), bioCookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Sterilisation submits a breakdown report against the device.
	reportReq := validReportRequest(device.ID)
	reportReq.EtatEndoscope = "en panne"
	reportReq.NaturePanne = "fuite sur gaine"
	rec = doJSON(t, router, http.MethodPost, "/v1/reports", reportReq, sterCookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	report := decode[endosdk.ReportInfo](t, rec)
	assert.Equal(t, "ster1", report.NomOperateur)
	assert.Equal(t, "Gastroscope", report.Endoscope)
	assert.Equal(t, "SN-001", report.NumeroSerie)

	// The device state followed the report.
	rec = doJSON(t, router, http.MethodGet, "/v1/endoscopes/"+device.ID, nil, bioCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en panne", decode[endosdk.EndoscopeInfo](t, rec).Etat)

	// Another sterilisation agent cannot edit the report.
	ster2Cookie := login(t, router, "ster2")
	update := validReportRequest("")
	update.Endoscope = report.Endoscope
	update.NumeroSerie = report.NumeroSerie
	rec = doJSON(t, router, http.MethodPut, "/v1/reports/"+report.ID, update, ster2Cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Biomedical can.
	rec = doJSON(t, router, http.MethodPut, "/v1/reports/"+report.ID, update, bioCookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "fonctionnel", decode[endosdk.ReportInfo](t, rec).EtatEndoscope)

	// Validation failures surface as 400 with the field named.
	bad := validReportRequest(device.ID)
	bad.HeureDebut = "0830"
	rec = doJSON(t, router, http.MethodPost, "/v1/reports", bad, sterCookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[endosdk.ErrorResponse](t, rec).ErrorDescription, "heure_debut")
}

func TestSterilisationCanPickDeviceForReport(t *testing.T) {
	router := newTestRouter(t)
	bioCookie := login(t, router, "bio")
	sterCookie := login(t, router, "ster1")

	rec := doJSON(t, router, http.MethodPost, "/v1/endoscopes", validEndoscopeRequest("SN-900"), bioCookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The report author browses the inventory to find the device they
	// sterilized, without any out-of-band knowledge of its id.
	rec = doJSON(t, router, http.MethodGet, "/v1/endoscopes", nil, sterCookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	listing := decode[endosdk.ListEndoscopesResponse](t, rec).Endoscopes
	require.Len(t, listing, 1)
	assert.Equal(t, "SN-900", listing[0].NumeroSerie)

	rec = doJSON(t, router, http.MethodGet, "/v1/endoscopes/"+listing[0].ID, nil, sterCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/reports", validReportRequest(listing[0].ID), sterCookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "SN-900", decode[endosdk.ReportInfo](t, rec).NumeroSerie)

	// Reading the inventory does not open it for writing.
	rec = doJSON(t, router, http.MethodPut, "/v1/endoscopes/"+listing[0].ID, validEndoscopeRequest("SN-900"), sterCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReportListDefaultsToOwnForSterilisation(t *testing.T) {
	router := newTestRouter(t)
	bioCookie := login(t, router, "bio")
	sterCookie := login(t, router, "ster1")
	ster2Cookie := login(t, router, "ster2")

	rec := doJSON(t, router, http.MethodPost, "/v1/endoscopes", validEndoscopeRequest("SN-001"), bioCookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	device := decode[endosdk.EndoscopeInfo](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/v1/reports", validReportRequest(device.ID), sterCookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	// ster2 sees nothing by default, everything with mine=false.
	rec = doJSON(t, router, http.MethodGet, "/v1/reports", nil, ster2Cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[endosdk.ListReportsResponse](t, rec).Reports)

	rec = doJSON(t, router, http.MethodGet, "/v1/reports?mine=false", nil, ster2Cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[endosdk.ListReportsResponse](t, rec).Reports, 1)

	// Biomedical sees everything without a filter.
	rec = doJSON(t, router, http.MethodGet, "/v1/reports", nil, bioCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[endosdk.ListReportsResponse](t, rec).Reports, 1)
}

func TestUserAdministration(t *testing.T) {
	router := newTestRouter(t)
	adminCookie := login(t, router, "admin")

	rec := doJSON(t, router, http.MethodPost, "/v1/users",
		endosdk.CreateUserRequest{Username: "marie", Password: "pw", Role: "sterilisation"}, adminCookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[endosdk.UserInfo](t, rec)
	assert.Equal(t, "sterilisation", created.Role)

	// Role change via PATCH.
	rec = doJSON(t, router, http.MethodPatch, "/v1/users/"+created.ID,
		endosdk.UpdateUserRequest{Role: "biomedical"}, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "biomedical", decode[endosdk.UserInfo](t, rec).Role)

	// The protected admin account cannot be deleted.
	rec = doJSON(t, router, http.MethodGet, "/v1/users", nil, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var adminID string
	for _, u := range decode[endosdk.ListUsersResponse](t, rec).Users {
		if u.Username == "admin" {
			adminID = u.ID
		}
	}
	require.NotEmpty(t, adminID)

	rec = doJSON(t, router, http.MethodDelete, "/v1/users/"+adminID, nil, adminCookie)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "protected_user", decode[endosdk.ErrorResponse](t, rec).Error)

	rec = doJSON(t, router, http.MethodDelete, "/v1/users/"+created.ID, nil, adminCookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestArchivesExport(t *testing.T) {
	router := newTestRouter(t)
	bioCookie := login(t, router, "bio")
	sterCookie := login(t, router, "ster1")

	rec := doJSON(t, router, http.MethodPost, "/v1/endoscopes", validEndoscopeRequest("SN-001"), bioCookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	device := decode[endosdk.EndoscopeInfo](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/v1/reports", validReportRequest(device.ID), sterCookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Filtered JSON view.
	rec = doJSON(t, router, http.MethodGet, "/v1/archives/reports?medecin=Dr.+Dupont&from=2026-08-01&to=2026-08-31", nil, sterCookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode[endosdk.ListReportsResponse](t, rec).Reports, 1)

	// HTML export.
	rec = doJSON(t, router, http.MethodGet, "/v1/archives/reports?format=html", nil, sterCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "SN-001")

	// Inventory archive is closed to sterilisation agents.
	rec = doJSON(t, router, http.MethodGet, "/v1/archives/endoscopes", nil, sterCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/archives/endoscopes?format=html", nil, bioCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	// Bad date parameters are rejected.
	rec = doJSON(t, router, http.MethodGet, "/v1/archives/reports?from=20-08-2026", nil, sterCookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalfunctionAlertBelowThreshold(t *testing.T) {
	router := newTestRouter(t)
	bioCookie := login(t, router, "bio")

	rec := doJSON(t, router, http.MethodPost, "/v1/endoscopes", validEndoscopeRequest("SN-001"), bioCookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	// One healthy device: 0% malfunction, nothing to alert about.
	rec = doJSON(t, router, http.MethodPost, "/v1/alerts/malfunction", nil, bioCookie)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "threshold_not_reached", decode[endosdk.ErrorResponse](t, rec).Error)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/livez", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[endosdk.HealthResponse](t, rec).Status)

	rec = doJSON(t, router, http.MethodGet, "/readyz", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[endosdk.HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	assert.Equal(t, "ok", health.Checks.Database)
}
