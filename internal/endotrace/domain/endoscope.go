package domain

import "time"

// EndoscopeState is the operational state of a device. Values are kept in
// French to match the clinical unit's vocabulary and the persisted data.
type EndoscopeState string

const (
	StateFunctional EndoscopeState = "fonctionnel"
	StateBroken     EndoscopeState = "en panne"
)

func (s EndoscopeState) Valid() bool {
	return s == StateFunctional || s == StateBroken
}

// Location is where a device currently sits.
type Location string

const (
	LocationStock         Location = "stock"
	LocationInUse         Location = "en utilisation"
	LocationExternal      Location = "externe"
	LocationSterilisation Location = "zone de stérilisation"
)

func (l Location) Valid() bool {
	switch l {
	case LocationStock, LocationInUse, LocationExternal, LocationSterilisation:
		return true
	}
	return false
}

// Endoscope is one inventory record. NumeroSerie is unique across the fleet.
type Endoscope struct {
	ID           string
	Designation  string
	Marque       string
	Modele       string
	NumeroSerie  string
	Etat         EndoscopeState
	Localisation Location
	Observation  string // optional free text
	CreatedBy    string // username of the biomedical actor who registered it
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
