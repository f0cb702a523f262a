package service

import (
	"context"
	"strings"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
	"github.com/clinsuite/endotrace/pkg/idx"
	"github.com/clinsuite/endotrace/pkg/slogx"
)

// ReportInput carries the writable fields of a sterilization report. On
// creation EndoscopeID names the inventory record whose designation and
// serial get snapshotted; on update the snapshot fields are edited directly.
type ReportInput struct {
	EndoscopeID        string
	Endoscope          string // snapshot override, used by update only
	NumeroSerie        string // snapshot override, used by update only
	MedecinResponsable string
	DateDesinfection   time.Time
	TypeDesinfection   domain.DisinfectionType
	Cycle              domain.CycleResult
	TestEtancheite     domain.LeakTestResult
	HeureDebut         string
	HeureFin           string
	ProcedureMedicale  string
	Salle              string
	TypeActe           string
	EtatEndoscope      domain.EndoscopeState
	NaturePanne        string
}

func (in ReportInput) validate() error {
	switch {
	case in.MedecinResponsable == "":
		return domain.Missing("medecin_responsable")
	case in.DateDesinfection.IsZero():
		return domain.Missing("date_desinfection")
	case in.HeureDebut == "":
		return domain.Missing("heure_debut")
	case in.HeureFin == "":
		return domain.Missing("heure_fin")
	case in.Salle == "":
		return domain.Missing("salle")
	case in.TypeActe == "":
		return domain.Missing("type_acte")
	}
	// Times are separator-validated only, matching the paper form's HH:MM.
	if !strings.Contains(in.HeureDebut, ":") {
		return domain.Invalid("heure_debut", "expected HH:MM")
	}
	if !strings.Contains(in.HeureFin, ":") {
		return domain.Invalid("heure_fin", "expected HH:MM")
	}
	if !in.TypeDesinfection.Valid() {
		return domain.Invalid("type_desinfection", "unknown type")
	}
	if !in.Cycle.Valid() {
		return domain.Invalid("cycle", "unknown cycle")
	}
	if !in.TestEtancheite.Valid() {
		return domain.Invalid("test_etancheite", "unknown result")
	}
	if !in.EtatEndoscope.Valid() {
		return domain.Invalid("etat_endoscope", "unknown state")
	}
	// A breakdown must name its nature; a working device must not carry one.
	if in.EtatEndoscope == domain.StateBroken && strings.TrimSpace(in.NaturePanne) == "" {
		return domain.Missing("nature_panne")
	}
	return nil
}

// ReportService manages sterilization/disinfection reports.
type ReportService struct {
	Store store.Store
}

// Create validates and persists a report. The endoscope designation and
// serial are copied from the referenced inventory record at this moment and
// never resynced. The device's etat is updated to the reported state inside
// the same transaction, so the report and the inventory never disagree
// halfway.
func (s *ReportService) Create(ctx context.Context, in ReportInput, operator string) (domain.SterilizationReport, error) {
	if in.EndoscopeID == "" {
		return domain.SterilizationReport{}, domain.Missing("endoscope_id")
	}
	if err := in.validate(); err != nil {
		return domain.SterilizationReport{}, err
	}

	rep := domain.SterilizationReport{
		ID:                 idx.New().String(),
		NomOperateur:       operator,
		MedecinResponsable: in.MedecinResponsable,
		DateDesinfection:   in.DateDesinfection,
		TypeDesinfection:   in.TypeDesinfection,
		Cycle:              in.Cycle,
		TestEtancheite:     in.TestEtancheite,
		HeureDebut:         in.HeureDebut,
		HeureFin:           in.HeureFin,
		ProcedureMedicale:  in.ProcedureMedicale,
		Salle:              in.Salle,
		TypeActe:           in.TypeActe,
		EtatEndoscope:      in.EtatEndoscope,
		NaturePanne:        in.NaturePanne,
		CreatedBy:          operator,
	}

	// The snapshot read happens inside the same transaction as the insert
	// and the state flip, so a concurrent device edit cannot slip between
	// them.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		endoscope, err := tx.Endoscopes().GetByID(ctx, in.EndoscopeID)
		if err != nil {
			return err
		}
		rep.Endoscope = endoscope.Designation
		rep.NumeroSerie = endoscope.NumeroSerie

		if err := tx.Reports().Create(ctx, rep); err != nil {
			return err
		}
		return tx.Endoscopes().UpdateEtat(ctx, in.EndoscopeID, in.EtatEndoscope)
	})
	if err != nil {
		return domain.SterilizationReport{}, err
	}

	slogx.FromContext(ctx).Info("sterilization report created",
		"report_id", rep.ID, "numero_serie", rep.NumeroSerie, "etat", string(rep.EtatEndoscope))
	return rep, nil
}

func (s *ReportService) GetByID(ctx context.Context, id string) (domain.SterilizationReport, error) {
	return s.Store.Reports().GetByID(ctx, id)
}

func (s *ReportService) ListAll(ctx context.Context) ([]domain.SterilizationReport, error) {
	return s.Store.Reports().ListAll(ctx)
}

func (s *ReportService) Query(ctx context.Context, q store.ReportQuery) ([]domain.SterilizationReport, error) {
	return s.Store.Reports().Query(ctx, q)
}

// Update rewrites a report in place, including its snapshot fields. The
// caller is responsible for the modify-permission check; this layer only
// validates the data. No inventory side effect on update.
func (s *ReportService) Update(ctx context.Context, id string, in ReportInput) (domain.SterilizationReport, error) {
	if err := in.validate(); err != nil {
		return domain.SterilizationReport{}, err
	}
	if in.Endoscope == "" {
		return domain.SterilizationReport{}, domain.Missing("endoscope")
	}
	if in.NumeroSerie == "" {
		return domain.SterilizationReport{}, domain.Missing("numero_serie")
	}

	rep, err := s.Store.Reports().GetByID(ctx, id)
	if err != nil {
		return domain.SterilizationReport{}, err
	}

	rep.Endoscope = in.Endoscope
	rep.NumeroSerie = in.NumeroSerie
	rep.MedecinResponsable = in.MedecinResponsable
	rep.DateDesinfection = in.DateDesinfection
	rep.TypeDesinfection = in.TypeDesinfection
	rep.Cycle = in.Cycle
	rep.TestEtancheite = in.TestEtancheite
	rep.HeureDebut = in.HeureDebut
	rep.HeureFin = in.HeureFin
	rep.ProcedureMedicale = in.ProcedureMedicale
	rep.Salle = in.Salle
	rep.TypeActe = in.TypeActe
	rep.EtatEndoscope = in.EtatEndoscope
	rep.NaturePanne = in.NaturePanne

	if err := s.Store.Reports().Update(ctx, rep); err != nil {
		return domain.SterilizationReport{}, err
	}
	return rep, nil
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	return s.Store.Reports().Delete(ctx, id)
}
