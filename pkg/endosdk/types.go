// Package endosdk holds the request and response types of the EndoTrace HTTP
// API so client code can share them with the server.
package endosdk

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description,omitempty"`
	AllowedRoles     []string `json:"allowed_roles,omitempty"`
}

// LoginRequest carries the credentials for POST /v1/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse describes the current session identity.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
}

// CreateUserRequest is the body of POST /v1/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest is the body of PATCH /v1/users/{id}. Empty fields are
// left unchanged.
type UpdateUserRequest struct {
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}

// UserInfo is one user row. Password hashes never leave the server.
type UserInfo struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
}

// EndoscopeRequest is the body of POST /v1/endoscopes and PUT
// /v1/endoscopes/{id}.
type EndoscopeRequest struct {
	Designation  string `json:"designation"`
	Marque       string `json:"marque"`
	Modele       string `json:"modele"`
	NumeroSerie  string `json:"numero_serie"`
	Etat         string `json:"etat"`
	Localisation string `json:"localisation"`
	Observation  string `json:"observation,omitempty"`
}

// EndoscopeInfo is one inventory row.
type EndoscopeInfo struct {
	ID           string `json:"id"`
	Designation  string `json:"designation"`
	Marque       string `json:"marque"`
	Modele       string `json:"modele"`
	NumeroSerie  string `json:"numero_serie"`
	Etat         string `json:"etat"`
	Localisation string `json:"localisation"`
	Observation  string `json:"observation,omitempty"`
	CreatedBy    string `json:"created_by,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type ListEndoscopesResponse struct {
	Endoscopes []EndoscopeInfo `json:"endoscopes"`
}

// ReportRequest is the body of POST /v1/reports and PUT /v1/reports/{id}.
// EndoscopeID is required on create and ignored on update; Endoscope and
// NumeroSerie are ignored on create (snapshotted server-side) and required on
// update.
type ReportRequest struct {
	EndoscopeID        string `json:"endoscope_id,omitempty"`
	Endoscope          string `json:"endoscope,omitempty"`
	NumeroSerie        string `json:"numero_serie,omitempty"`
	MedecinResponsable string `json:"medecin_responsable"`
	DateDesinfection   string `json:"date_desinfection"` // YYYY-MM-DD
	TypeDesinfection   string `json:"type_desinfection"`
	Cycle              string `json:"cycle"`
	TestEtancheite     string `json:"test_etancheite"`
	HeureDebut         string `json:"heure_debut"`
	HeureFin           string `json:"heure_fin"`
	ProcedureMedicale  string `json:"procedure_medicale,omitempty"`
	Salle              string `json:"salle"`
	TypeActe           string `json:"type_acte"`
	EtatEndoscope      string `json:"etat_endoscope"`
	NaturePanne        string `json:"nature_panne,omitempty"`
}

// ReportInfo is one sterilization report row.
type ReportInfo struct {
	ID                 string `json:"id"`
	NomOperateur       string `json:"nom_operateur"`
	Endoscope          string `json:"endoscope"`
	NumeroSerie        string `json:"numero_serie"`
	MedecinResponsable string `json:"medecin_responsable"`
	DateDesinfection   string `json:"date_desinfection"`
	TypeDesinfection   string `json:"type_desinfection"`
	Cycle              string `json:"cycle"`
	TestEtancheite     string `json:"test_etancheite"`
	HeureDebut         string `json:"heure_debut"`
	HeureFin           string `json:"heure_fin"`
	ProcedureMedicale  string `json:"procedure_medicale,omitempty"`
	Salle              string `json:"salle"`
	TypeActe           string `json:"type_acte"`
	EtatEndoscope      string `json:"etat_endoscope"`
	NaturePanne        string `json:"nature_panne,omitempty"`
	CreatedBy          string `json:"created_by"`
	CreatedAt          string `json:"created_at"`
}

type ListReportsResponse struct {
	Reports []ReportInfo `json:"reports"`
}

// DashboardResponse is the overview aggregate.
type DashboardResponse struct {
	Total               int            `json:"total"`
	StatusCounts        map[string]int `json:"status_counts"`
	LocationCounts      map[string]int `json:"location_counts"`
	MalfunctionPercent  float64        `json:"malfunction_percent"`
	BrokenCount         int            `json:"broken_count"`
	AlertThresholdMet   bool           `json:"alert_threshold_met"`
	RecentBreakdowns    []ReportInfo   `json:"recent_breakdowns"`
	RecentBreakdownDays int            `json:"recent_breakdown_days"`
}

// AlertResponse acknowledges a malfunction alert email.
type AlertResponse struct {
	Sent               bool    `json:"sent"`
	Recipient          string  `json:"recipient,omitempty"`
	MalfunctionPercent float64 `json:"malfunction_percent"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is the body of the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
