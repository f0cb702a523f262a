package domain

import "time"

// DisinfectionType distinguishes manual from machine cycles.
type DisinfectionType string

const (
	DisinfectionManual    DisinfectionType = "manuel"
	DisinfectionAutomatic DisinfectionType = "automatique"
)

func (d DisinfectionType) Valid() bool {
	return d == DisinfectionManual || d == DisinfectionAutomatic
}

// CycleResult records whether the disinfection cycle ran to completion.
type CycleResult string

const (
	CycleComplete   CycleResult = "complet"
	CycleIncomplete CycleResult = "incomplet"
)

func (c CycleResult) Valid() bool {
	return c == CycleComplete || c == CycleIncomplete
}

// LeakTestResult is the outcome of the pre-disinfection leak test.
type LeakTestResult string

const (
	LeakTestPassed LeakTestResult = "réussi"
	LeakTestFailed LeakTestResult = "échoué"
)

func (l LeakTestResult) Valid() bool {
	return l == LeakTestPassed || l == LeakTestFailed
}

// SterilizationReport is one disinfection record. Endoscope and NumeroSerie
// are denormalized snapshots of the device taken at creation time; historical
// reports must not change retroactively when the inventory record is edited
// later, so there is deliberately no foreign key back to the endoscope.
type SterilizationReport struct {
	ID                 string
	NomOperateur       string
	Endoscope          string // designation snapshot
	NumeroSerie        string // serial snapshot
	MedecinResponsable string
	DateDesinfection   time.Time // date only, stored as YYYY-MM-DD
	TypeDesinfection   DisinfectionType
	Cycle              CycleResult
	TestEtancheite     LeakTestResult
	HeureDebut         string // HH:MM, separator-validated only
	HeureFin           string // HH:MM, separator-validated only
	ProcedureMedicale  string
	Salle              string
	TypeActe           string
	EtatEndoscope      EndoscopeState
	NaturePanne        string // required iff EtatEndoscope is "en panne"
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
