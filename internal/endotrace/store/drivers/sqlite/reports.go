package sqlite

import (
	"context"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
)

type reportsRepo struct {
	db querier
}

const reportColumns = `id, nom_operateur, endoscope, numero_serie,
	medecin_responsable, date_desinfection, type_desinfection, cycle,
	test_etancheite, heure_debut, heure_fin, procedure_medicale, salle,
	type_acte, etat_endoscope, nature_panne, created_by, created_at, updated_at`

// reportSortKeys whitelists the columns the archive view may sort on.
var reportSortKeys = map[string]bool{
	"id":                  true,
	"nom_operateur":       true,
	"endoscope":           true,
	"numero_serie":        true,
	"medecin_responsable": true,
	"date_desinfection":   true,
	"type_desinfection":   true,
	"cycle":               true,
	"test_etancheite":     true,
	"heure_debut":         true,
	"heure_fin":           true,
	"salle":               true,
	"type_acte":           true,
	"etat_endoscope":      true,
	"created_by":          true,
	"created_at":          true,
}

func scanReport(row interface{ Scan(...any) error }) (domain.SterilizationReport, error) {
	var rep domain.SterilizationReport
	var date, typeDes, cycle, leak, etat string
	err := row.Scan(&rep.ID, &rep.NomOperateur, &rep.Endoscope, &rep.NumeroSerie,
		&rep.MedecinResponsable, &date, &typeDes, &cycle, &leak,
		&rep.HeureDebut, &rep.HeureFin, &rep.ProcedureMedicale, &rep.Salle,
		&rep.TypeActe, &etat, &rep.NaturePanne, &rep.CreatedBy,
		&rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return domain.SterilizationReport{}, err
	}
	rep.DateDesinfection, err = parseDate(date)
	if err != nil {
		return domain.SterilizationReport{}, err
	}
	rep.TypeDesinfection = domain.DisinfectionType(typeDes)
	rep.Cycle = domain.CycleResult(cycle)
	rep.TestEtancheite = domain.LeakTestResult(leak)
	rep.EtatEndoscope = domain.EndoscopeState(etat)
	return rep, nil
}

func (r *reportsRepo) GetByID(ctx context.Context, id string) (domain.SterilizationReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM sterilisation_reports WHERE id = ?`, id)
	rep, err := scanReport(row)
	if err != nil {
		return domain.SterilizationReport{}, mapNotFound(err)
	}
	return rep, nil
}

func (r *reportsRepo) Create(ctx context.Context, rep domain.SterilizationReport) error {
	now := time.Now().UTC()
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = now
	}
	if rep.UpdatedAt.IsZero() {
		rep.UpdatedAt = now
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sterilisation_reports (id, nom_operateur, endoscope,
		   numero_serie, medecin_responsable, date_desinfection,
		   type_desinfection, cycle, test_etancheite, heure_debut, heure_fin,
		   procedure_medicale, salle, type_acte, etat_endoscope, nature_panne,
		   created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.NomOperateur, rep.Endoscope, rep.NumeroSerie,
		rep.MedecinResponsable, formatDate(rep.DateDesinfection),
		string(rep.TypeDesinfection), string(rep.Cycle), string(rep.TestEtancheite),
		rep.HeureDebut, rep.HeureFin, rep.ProcedureMedicale, rep.Salle,
		rep.TypeActe, string(rep.EtatEndoscope), rep.NaturePanne,
		rep.CreatedBy, rep.CreatedAt, rep.UpdatedAt)
	return err
}

func (r *reportsRepo) Update(ctx context.Context, rep domain.SterilizationReport) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sterilisation_reports
		 SET nom_operateur = ?, endoscope = ?, numero_serie = ?,
		     medecin_responsable = ?, date_desinfection = ?,
		     type_desinfection = ?, cycle = ?, test_etancheite = ?,
		     heure_debut = ?, heure_fin = ?, procedure_medicale = ?, salle = ?,
		     type_acte = ?, etat_endoscope = ?, nature_panne = ?, updated_at = ?
		 WHERE id = ?`,
		rep.NomOperateur, rep.Endoscope, rep.NumeroSerie,
		rep.MedecinResponsable, formatDate(rep.DateDesinfection),
		string(rep.TypeDesinfection), string(rep.Cycle), string(rep.TestEtancheite),
		rep.HeureDebut, rep.HeureFin, rep.ProcedureMedicale, rep.Salle,
		rep.TypeActe, string(rep.EtatEndoscope), rep.NaturePanne,
		time.Now().UTC(), rep.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sterilisation_reports WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportsRepo) ListAll(ctx context.Context) ([]domain.SterilizationReport, error) {
	return r.Query(ctx, store.ReportQuery{})
}

func (r *reportsRepo) Query(ctx context.Context, q store.ReportQuery) ([]domain.SterilizationReport, error) {
	var conds []string
	var args []any
	inClause(&conds, &args, "nom_operateur", q.Operateurs)
	inClause(&conds, &args, "medecin_responsable", q.Medecins)
	inClause(&conds, &args, "etat_endoscope", q.Etats)
	if q.CreatedBy != "" {
		conds = append(conds, "created_by = ?")
		args = append(args, q.CreatedBy)
	}
	if q.From != nil {
		conds = append(conds, "date_desinfection >= ?")
		args = append(args, formatDate(*q.From))
	}
	if q.To != nil {
		conds = append(conds, "date_desinfection <= ?")
		args = append(args, formatDate(*q.To))
	}

	order, err := orderBy(q.SortBy, q.SortDesc, reportSortKeys)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM sterilisation_reports`+whereClause(conds)+order, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SterilizationReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *reportsRepo) RecentBreakdowns(ctx context.Context, cutoff time.Time) ([]domain.SterilizationReport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM sterilisation_reports
		 WHERE etat_endoscope = ? AND date_desinfection >= ?
		 ORDER BY date_desinfection DESC, id DESC`,
		string(domain.StateBroken), formatDate(cutoff))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SterilizationReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
