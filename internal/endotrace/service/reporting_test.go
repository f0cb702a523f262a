package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
)

func TestMalfunctionPercentage_EmptyFleet(t *testing.T) {
	ctx := context.Background()
	reporting := ReportingService{Store: newTestStore(t)}

	percent, broken, total, err := reporting.MalfunctionPercentage(ctx)
	require.NoError(t, err)
	assert.Zero(t, percent)
	assert.Zero(t, broken)
	assert.Zero(t, total)
}

func TestMalfunctionPercentage(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	scopes := EndoscopeService{Store: st}
	reporting := ReportingService{Store: st}

	for i := 0; i < 10; i++ {
		in := validEndoscope(fmt.Sprintf("SN-%03d", i))
		if i < 6 {
			in.Etat = domain.StateBroken
		}
		_, err := scopes.Create(ctx, in, "marie")
		require.NoError(t, err)
	}

	percent, broken, total, err := reporting.MalfunctionPercentage(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, percent, 0.001)
	assert.Equal(t, 6, broken)
	assert.Equal(t, 10, total)
	assert.Greater(t, percent, AlertThresholdPercent)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	scopes := EndoscopeService{Store: st}
	reporting := ReportingService{Store: st}

	broken := validEndoscope("SN-B")
	broken.Etat = domain.StateBroken
	broken.Localisation = domain.LocationExternal

	inUse := validEndoscope("SN-U")
	inUse.Localisation = domain.LocationInUse

	for _, in := range []EndoscopeInput{validEndoscope("SN-A"), broken, inUse} {
		_, err := scopes.Create(ctx, in, "marie")
		require.NoError(t, err)
	}

	stats, err := reporting.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.StatusCounts[domain.StateFunctional])
	assert.Equal(t, 1, stats.StatusCounts[domain.StateBroken])
	assert.Equal(t, 1, stats.LocationCounts[domain.LocationStock])
	assert.Equal(t, 1, stats.LocationCounts[domain.LocationInUse])
	assert.Equal(t, 1, stats.LocationCounts[domain.LocationExternal])
}

func TestRecentBreakdowns(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	scopes := EndoscopeService{Store: st}
	reports := ReportService{Store: st}
	reporting := ReportingService{Store: st}

	e, err := scopes.Create(ctx, validEndoscope("SN-001"), "marie")
	require.NoError(t, err)

	mkReport := func(daysAgo int, etat domain.EndoscopeState) {
		in := validReport(e.ID)
		in.DateDesinfection = time.Now().AddDate(0, 0, -daysAgo)
		in.EtatEndoscope = etat
		if etat == domain.StateBroken {
			in.NaturePanne = "canal bouché"
		}
		_, err := reports.Create(ctx, in, "agent1")
		require.NoError(t, err)
	}

	mkReport(2, domain.StateBroken)
	mkReport(5, domain.StateBroken)
	mkReport(3, domain.StateFunctional) // not a breakdown
	mkReport(30, domain.StateBroken)    // outside the window

	got, err := reporting.RecentBreakdowns(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Most recent first.
	assert.True(t, got[0].DateDesinfection.After(got[1].DateDesinfection))
	for _, r := range got {
		assert.Equal(t, domain.StateBroken, r.EtatEndoscope)
	}
}

func TestNotifier_NotConfigured(t *testing.T) {
	n := Notifier{}
	err := n.SendMalfunctionAlert(context.Background(), 60, 6, 10)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
