package sqlite

import (
	"context"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
)

type endoscopesRepo struct {
	db querier
}

const endoscopeColumns = `id, designation, marque, modele, numero_serie, etat,
	localisation, observation, created_by, created_at, updated_at`

// endoscopeSortKeys whitelists the columns the archive view may sort on.
var endoscopeSortKeys = map[string]bool{
	"id":           true,
	"designation":  true,
	"marque":       true,
	"modele":       true,
	"numero_serie": true,
	"etat":         true,
	"localisation": true,
	"created_by":   true,
	"created_at":   true,
}

func scanEndoscope(row interface{ Scan(...any) error }) (domain.Endoscope, error) {
	var e domain.Endoscope
	var etat, loc string
	err := row.Scan(&e.ID, &e.Designation, &e.Marque, &e.Modele, &e.NumeroSerie,
		&etat, &loc, &e.Observation, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Endoscope{}, err
	}
	e.Etat = domain.EndoscopeState(etat)
	e.Localisation = domain.Location(loc)
	return e, nil
}

func (r *endoscopesRepo) GetByID(ctx context.Context, id string) (domain.Endoscope, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+endoscopeColumns+` FROM endoscopes WHERE id = ?`, id)
	e, err := scanEndoscope(row)
	if err != nil {
		return domain.Endoscope{}, mapNotFound(err)
	}
	return e, nil
}

func (r *endoscopesRepo) Create(ctx context.Context, e domain.Endoscope) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO endoscopes (id, designation, marque, modele, numero_serie,
		   etat, localisation, observation, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Designation, e.Marque, e.Modele, e.NumeroSerie,
		string(e.Etat), string(e.Localisation), e.Observation, e.CreatedBy,
		e.CreatedAt, e.UpdatedAt)
	return mapUnique(err)
}

func (r *endoscopesRepo) Update(ctx context.Context, e domain.Endoscope) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE endoscopes
		 SET designation = ?, marque = ?, modele = ?, numero_serie = ?,
		     etat = ?, localisation = ?, observation = ?, updated_at = ?
		 WHERE id = ?`,
		e.Designation, e.Marque, e.Modele, e.NumeroSerie,
		string(e.Etat), string(e.Localisation), e.Observation,
		time.Now().UTC(), e.ID)
	if err != nil {
		return mapUnique(err)
	}
	return requireRow(res)
}

func (r *endoscopesRepo) UpdateEtat(ctx context.Context, id string, etat domain.EndoscopeState) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE endoscopes SET etat = ?, updated_at = ? WHERE id = ?`,
		string(etat), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *endoscopesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM endoscopes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *endoscopesRepo) ListAll(ctx context.Context) ([]domain.Endoscope, error) {
	return r.Query(ctx, store.EndoscopeQuery{})
}

func (r *endoscopesRepo) Query(ctx context.Context, q store.EndoscopeQuery) ([]domain.Endoscope, error) {
	var conds []string
	var args []any
	inClause(&conds, &args, "etat", q.Etats)
	inClause(&conds, &args, "localisation", q.Localisations)

	order, err := orderBy(q.SortBy, q.SortDesc, endoscopeSortKeys)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+endoscopeColumns+` FROM endoscopes`+whereClause(conds)+order, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Endoscope
	for rows.Next() {
		e, err := scanEndoscope(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *endoscopesRepo) CountByEtat(ctx context.Context) (map[domain.EndoscopeState]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT etat, COUNT(*) FROM endoscopes GROUP BY etat`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.EndoscopeState]int)
	for rows.Next() {
		var etat string
		var n int
		if err := rows.Scan(&etat, &n); err != nil {
			return nil, err
		}
		counts[domain.EndoscopeState(etat)] = n
	}
	return counts, rows.Err()
}

func (r *endoscopesRepo) CountByLocalisation(ctx context.Context) (map[domain.Location]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT localisation, COUNT(*) FROM endoscopes GROUP BY localisation`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Location]int)
	for rows.Next() {
		var loc string
		var n int
		if err := rows.Scan(&loc, &n); err != nil {
			return nil, err
		}
		counts[domain.Location(loc)] = n
	}
	return counts, rows.Err()
}
