package store

import (
	"context"
	"errors"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
)

var (
	ErrNotFound       = errors.New("store: not found")
	ErrAlreadyExists  = errors.New("store: already exists")
	ErrInvalidSortKey = errors.New("store: invalid sort key")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep the record kinds separated and let
// services take transactions without knowing the driver.
type Store interface {
	Users() Users
	Sessions() Sessions
	Endoscopes() Endoscopes
	Reports() Reports

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back when fn errors,
	// committed otherwise. Every multi-statement mutation goes through here
	// so partial writes are never visible.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	// GetByUsername is used during login.
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	// Create inserts a new user (id provided by the caller via ULID).
	// Returns ErrAlreadyExists on a username collision.
	Create(ctx context.Context, u domain.User) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	// Delete removes a user. Sessions cascade per schema. The protected-admin
	// rule is enforced above the store, in the user service.
	Delete(ctx context.Context, id string) error
	// ListAll returns users in insertion (id) order.
	ListAll(ctx context.Context) ([]domain.User, error)
	// IsEmpty reports whether any user exists, used by bootstrap.
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	Create(ctx context.Context, s domain.Session) error
	// GetByFingerprint resolves a cookie token fingerprint to its session.
	GetByFingerprint(ctx context.Context, fingerprint string) (domain.Session, error)
	// Delete removes a session immediately; this is the whole of logout.
	Delete(ctx context.Context, id string) error
}

// EndoscopeQuery is the archive filter/sort contract for inventory records.
// Multiple values within a field are OR'd; fields are AND'd together.
type EndoscopeQuery struct {
	Etats         []domain.EndoscopeState
	Localisations []domain.Location

	// SortBy names a column from the endoscope sort whitelist; empty means
	// insertion order. Ties always break on id so ordering is deterministic.
	SortBy   string
	SortDesc bool
}

type Endoscopes interface {
	GetByID(ctx context.Context, id string) (domain.Endoscope, error)
	// Create inserts a device. Returns ErrAlreadyExists when numero_serie is taken.
	Create(ctx context.Context, e domain.Endoscope) error
	// Update replaces every mutable field. Re-checks numero_serie uniqueness.
	// Concurrent updates are last-write-wins; there is no version column.
	Update(ctx context.Context, e domain.Endoscope) error
	// UpdateEtat flips only the device state, used by report submission.
	UpdateEtat(ctx context.Context, id string, etat domain.EndoscopeState) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Endoscope, error)
	Query(ctx context.Context, q EndoscopeQuery) ([]domain.Endoscope, error)
	// CountByEtat and CountByLocalisation feed the dashboard.
	CountByEtat(ctx context.Context) (map[domain.EndoscopeState]int, error)
	CountByLocalisation(ctx context.Context) (map[domain.Location]int, error)
}

// ReportQuery is the archive filter/sort contract for sterilization reports.
// Date bounds are inclusive on date_desinfection.
type ReportQuery struct {
	Operateurs []string
	Medecins   []string
	Etats      []domain.EndoscopeState
	CreatedBy  string // restricts to reports authored by one user
	From       *time.Time
	To         *time.Time

	SortBy   string
	SortDesc bool
}

type Reports interface {
	GetByID(ctx context.Context, id string) (domain.SterilizationReport, error)
	Create(ctx context.Context, r domain.SterilizationReport) error
	// Update replaces every mutable field, last-write-wins.
	Update(ctx context.Context, r domain.SterilizationReport) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.SterilizationReport, error)
	Query(ctx context.Context, q ReportQuery) ([]domain.SterilizationReport, error)
	// RecentBreakdowns returns "en panne" reports with date_desinfection on or
	// after cutoff, most recent first.
	RecentBreakdowns(ctx context.Context, cutoff time.Time) ([]domain.SterilizationReport, error)
}
