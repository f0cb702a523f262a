package service

import (
	"bytes"
	"html/template"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
)

// archiveTemplate is the printable export shared by both archive pages. It is
// self-contained (inline CSS, no external assets) so the file can be saved
// and printed offline.
var archiveTemplate = template.Must(template.New("archive").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 20px; border-bottom: 2px solid #2c5f7c; padding-bottom: 6px; }
.meta { color: #666; font-size: 12px; margin-bottom: 16px; }
table { border-collapse: collapse; width: 100%; font-size: 12px; }
th, td { border: 1px solid #bbb; padding: 5px 8px; text-align: left; }
th { background: #2c5f7c; color: #fff; }
tr:nth-child(even) { background: #f3f6f8; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Généré le {{.GeneratedAt}} &mdash; {{.Count}} enregistrement(s)</p>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type archiveData struct {
	Title       string
	GeneratedAt string
	Count       int
	Headers     []string
	Rows        [][]string
}

func renderArchive(data archiveData) (string, error) {
	data.GeneratedAt = time.Now().Format("02/01/2006 15:04")
	var buf bytes.Buffer
	if err := archiveTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderReportArchiveHTML renders the sterilization report archive as a
// printable HTML document.
func RenderReportArchiveHTML(reports []domain.SterilizationReport) (string, error) {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.DateDesinfection.Format("2006-01-02"),
			r.NomOperateur,
			r.Endoscope,
			r.NumeroSerie,
			r.MedecinResponsable,
			string(r.TypeDesinfection),
			string(r.Cycle),
			string(r.TestEtancheite),
			r.HeureDebut,
			r.HeureFin,
			r.Salle,
			r.TypeActe,
			string(r.EtatEndoscope),
			r.NaturePanne,
		})
	}
	return renderArchive(archiveData{
		Title:   "Archives des rapports de stérilisation",
		Count:   len(reports),
		Headers: []string{"Date", "Opérateur", "Endoscope", "N° série", "Médecin", "Type", "Cycle", "Étanchéité", "Début", "Fin", "Salle", "Type d'acte", "État", "Nature de la panne"},
		Rows:    rows,
	})
}

// RenderEndoscopeArchiveHTML renders the device inventory as a printable HTML
// document.
func RenderEndoscopeArchiveHTML(endoscopes []domain.Endoscope) (string, error) {
	rows := make([][]string, 0, len(endoscopes))
	for _, e := range endoscopes {
		rows = append(rows, []string{
			e.Designation,
			e.Marque,
			e.Modele,
			e.NumeroSerie,
			string(e.Etat),
			string(e.Localisation),
			e.Observation,
		})
	}
	return renderArchive(archiveData{
		Title:   "Archives du parc d'endoscopes",
		Count:   len(endoscopes),
		Headers: []string{"Désignation", "Marque", "Modèle", "N° série", "État", "Localisation", "Observation"},
		Rows:    rows,
	})
}
