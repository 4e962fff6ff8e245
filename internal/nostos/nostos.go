// Package nostos defines the core domain types shared by the roster,
// disclosure and screen packages. It has zero external dependencies.
package nostos

import "errors"

var (
	// ErrNotFound is returned when a person, session or selection is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSection is returned for a section outside the closed set of
	// four top-level views.
	ErrInvalidSection = errors.New("invalid section")
)

// Position is a WGS84 coordinate. Values are trusted static data and are
// not range-checked.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Person is a located person shown as a marker on the map. Values are
// immutable once placed in a roster.
type Person struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	LastName string   `json:"lastName"`
	Age      int      `json:"age"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	DNI      string   `json:"dni"`
	Position Position `json:"position"`
}

// Marker is the map-facing view of a person: identity and location only.
type Marker struct {
	ID       int      `json:"id"`
	Position Position `json:"position"`
}

func (p Person) Marker() Marker {
	return Marker{ID: p.ID, Position: p.Position}
}
