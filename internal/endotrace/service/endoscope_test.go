package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
)

func validEndoscope(serie string) EndoscopeInput {
	return EndoscopeInput{
		Designation:  "Gastroscope",
		Marque:       "Olympus",
		Modele:       "GIF-H190",
		NumeroSerie:  serie,
		Etat:         domain.StateFunctional,
		Localisation: domain.LocationStock,
	}
}

func TestEndoscopeCreate_DuplicateSerial(t *testing.T) {
	ctx := context.Background()
	scopes := EndoscopeService{Store: newTestStore(t)}

	_, err := scopes.Create(ctx, validEndoscope("SN-001"), "marie")
	require.NoError(t, err)

	_, err = scopes.Create(ctx, validEndoscope("SN-001"), "marie")
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEndoscopeCreate_Validation(t *testing.T) {
	ctx := context.Background()
	scopes := EndoscopeService{Store: newTestStore(t)}

	var verr *domain.ValidationError

	in := validEndoscope("SN-001")
	in.Designation = ""
	_, err := scopes.Create(ctx, in, "marie")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "designation", verr.Field)

	in = validEndoscope("SN-001")
	in.Etat = domain.EndoscopeState("cassé")
	_, err = scopes.Create(ctx, in, "marie")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "etat", verr.Field)

	in = validEndoscope("SN-001")
	in.Localisation = domain.Location("garage")
	_, err = scopes.Create(ctx, in, "marie")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "localisation", verr.Field)
}

func TestEndoscopeUpdate_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	scopes := EndoscopeService{Store: newTestStore(t)}

	e, err := scopes.Create(ctx, validEndoscope("SN-001"), "marie")
	require.NoError(t, err)

	first := validEndoscope("SN-001")
	first.Observation = "première modification"
	_, err = scopes.Update(ctx, e.ID, first)
	require.NoError(t, err)

	second := validEndoscope("SN-001")
	second.Observation = "seconde modification"
	_, err = scopes.Update(ctx, e.ID, second)
	require.NoError(t, err)

	got, err := scopes.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "seconde modification", got.Observation)
}

func TestEndoscopeQuery_FiltersAndSort(t *testing.T) {
	ctx := context.Background()
	scopes := EndoscopeService{Store: newTestStore(t)}

	broken := validEndoscope("SN-B")
	broken.Designation = "Coloscope"
	broken.Etat = domain.StateBroken
	broken.Localisation = domain.LocationExternal

	inUse := validEndoscope("SN-U")
	inUse.Designation = "Bronchoscope"
	inUse.Localisation = domain.LocationInUse

	for _, in := range []EndoscopeInput{validEndoscope("SN-A"), broken, inUse} {
		_, err := scopes.Create(ctx, in, "marie")
		require.NoError(t, err)
	}

	// Single-value filter.
	got, err := scopes.Query(ctx, store.EndoscopeQuery{Etats: []domain.EndoscopeState{domain.StateBroken}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SN-B", got[0].NumeroSerie)

	// Values within a field are OR'd.
	got, err = scopes.Query(ctx, store.EndoscopeQuery{
		Localisations: []domain.Location{domain.LocationStock, domain.LocationInUse},
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Fields are AND'd together.
	got, err = scopes.Query(ctx, store.EndoscopeQuery{
		Etats:         []domain.EndoscopeState{domain.StateFunctional},
		Localisations: []domain.Location{domain.LocationExternal},
	})
	require.NoError(t, err)
	assert.Empty(t, got)

	// Sorted output.
	got, err = scopes.Query(ctx, store.EndoscopeQuery{SortBy: "designation"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Bronchoscope", got[0].Designation)
	assert.Equal(t, "Coloscope", got[1].Designation)
	assert.Equal(t, "Gastroscope", got[2].Designation)

	// Unknown sort keys are rejected, not silently ignored.
	_, err = scopes.Query(ctx, store.EndoscopeQuery{SortBy: "password_hash"})
	assert.ErrorIs(t, err, store.ErrInvalidSortKey)
}
