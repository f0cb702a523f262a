package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())

	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testEndoscope(id, serie string) domain.Endoscope {
	return domain.Endoscope{
		ID:           id,
		Designation:  "Gastroscope",
		Marque:       "Olympus",
		Modele:       "GIF-H190",
		NumeroSerie:  serie,
		Etat:         domain.StateFunctional,
		Localisation: domain.LocationStock,
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newStore(t)
	assert.NoError(t, st.ApplyMigrations())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	boom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Endoscopes().Create(ctx, testEndoscope("e1", "SN-001")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing from the failed transaction is visible.
	_, err = st.Endoscopes().GetByID(ctx, "e1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Endoscopes().Create(ctx, testEndoscope("e1", "SN-001")); err != nil {
			return err
		}
		return tx.Endoscopes().UpdateEtat(ctx, "e1", domain.StateBroken)
	})
	require.NoError(t, err)

	e, err := st.Endoscopes().GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateBroken, e.Etat)
}

func TestUniqueViolationMapsToAlreadyExists(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	require.NoError(t, st.Endoscopes().Create(ctx, testEndoscope("e1", "SN-001")))
	err := st.Endoscopes().Create(ctx, testEndoscope("e2", "SN-001"))
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestSessionsCascadeWithUser(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	require.NoError(t, st.Users().Create(ctx, domain.User{
		ID: "u1", Username: "marie", PasswordHash: "x", Role: domain.RoleBiomedical,
	}))
	require.NoError(t, st.Sessions().Create(ctx, domain.Session{
		ID: "s1", TokenFingerprint: "fp", UserID: "u1",
		Username: "marie", Role: domain.RoleBiomedical,
	}))

	require.NoError(t, st.Users().Delete(ctx, "u1"))

	_, err := st.Sessions().GetByFingerprint(ctx, "fp")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMalformedStoredDateFailsScan(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	// A row written past the repository with a date the storage format
	// never produces.
	now := time.Now().UTC()
	_, err := st.db.ExecContext(ctx,
		`INSERT INTO sterilisation_reports (id, nom_operateur, endoscope,
		   numero_serie, medecin_responsable, date_desinfection,
		   type_desinfection, cycle, test_etancheite, heure_debut, heure_fin,
		   procedure_medicale, salle, type_acte, etat_endoscope, nature_panne,
		   created_by, created_at, updated_at)
		 VALUES ('r1', 'op', 'Gastroscope', 'SN-001', 'Dr. Dupont',
		   '20/08/2026', 'manuel', 'complet', 'réussi', '08:00', '09:00', '',
		   'Salle 1', 'Diagnostic', 'fonctionnel', '', 'op', ?, ?)`,
		now, now)
	require.NoError(t, err)

	_, err = st.Reports().GetByID(ctx, "r1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "20/08/2026")
}

func TestQueryRejectsUnknownSortKey(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	_, err := st.Endoscopes().Query(ctx, store.EndoscopeQuery{SortBy: "password_hash"})
	assert.ErrorIs(t, err, store.ErrInvalidSortKey)

	_, err = st.Reports().Query(ctx, store.ReportQuery{SortBy: "nature_panne; DROP TABLE users"})
	assert.ErrorIs(t, err, store.ErrInvalidSortKey)
}
