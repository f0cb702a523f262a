package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
)

func TestRenderReportArchiveHTML(t *testing.T) {
	reports := []domain.SterilizationReport{
		{
			NomOperateur:       "agent1",
			Endoscope:          "Gastroscope",
			NumeroSerie:        "SN-001",
			MedecinResponsable: "Dr. Dupont",
			DateDesinfection:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			TypeDesinfection:   domain.DisinfectionAutomatic,
			Cycle:              domain.CycleComplete,
			TestEtancheite:     domain.LeakTestPassed,
			HeureDebut:         "08:30",
			HeureFin:           "09:15",
			Salle:              "Salle 2",
			TypeActe:           "Diagnostic",
			EtatEndoscope:      domain.StateFunctional,
		},
	}

	html, err := RenderReportArchiveHTML(reports)
	require.NoError(t, err)
	assert.Contains(t, html, "Archives des rapports de stérilisation")
	assert.Contains(t, html, "1 enregistrement(s)")
	assert.Contains(t, html, "2026-08-20")
	assert.Contains(t, html, "SN-001")
	assert.Contains(t, html, "Dr. Dupont")
}

func TestRenderEndoscopeArchiveHTML_EscapesContent(t *testing.T) {
	endoscopes := []domain.Endoscope{
		{
			Designation:  "Coloscope <script>alert(1)</script>",
			Marque:       "Pentax",
			Modele:       "EC-3890",
			NumeroSerie:  "SN-XSS",
			Etat:         domain.StateFunctional,
			Localisation: domain.LocationStock,
		},
	}

	html, err := RenderEndoscopeArchiveHTML(endoscopes)
	require.NoError(t, err)
	assert.Contains(t, html, "Archives du parc d&#39;endoscopes")
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "SN-XSS")
}

func TestRenderArchive_Empty(t *testing.T) {
	html, err := RenderReportArchiveHTML(nil)
	require.NoError(t, err)
	assert.Contains(t, html, "0 enregistrement(s)")
}
