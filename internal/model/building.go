package model

import "github.com/framewright/framegen/internal/geom"

// OpeningKind identifies the kind of wall opening.
type OpeningKind string

const (
	OpeningWindow OpeningKind = "window"
	OpeningDoor   OpeningKind = "door"
)

// Valid reports whether k is a known opening kind.
func (k OpeningKind) Valid() bool {
	switch k {
	case OpeningWindow, OpeningDoor:
		return true
	}
	return false
}

// Wall is a wall segment defined by two floor-plane endpoints.
//
// Wall IDs are assumed unique within one generation request; lookup by
// ID relies on this.
type Wall struct {
	ID       string       `json:"id" yaml:"id"`
	Start    geom.Point2D `json:"start" yaml:"start"`
	End      geom.Point2D `json:"end" yaml:"end"`
	Openings []Opening    `json:"openings,omitempty" yaml:"openings,omitempty"`
}

// Length returns the wall length on the floor plane.
func (w Wall) Length() float64 {
	return w.Start.DistanceTo(w.End)
}

// Opening is a window or door positioned along its owning wall.
//
// Openings are carried through the pipeline but not consumed by the
// platform framing rule; they are reserved for opening-framing rules
// (king/jack studs, headers, sills).
type Opening struct {
	ID         string      `json:"id" yaml:"id"`
	Kind       OpeningKind `json:"kind" yaml:"kind"`
	Offset     float64     `json:"offset" yaml:"offset"`           // distance from wall start to opening center
	Width      float64     `json:"width" yaml:"width"`             // rough opening width (meters)
	Height     float64     `json:"height" yaml:"height"`           // rough opening height (meters)
	SillHeight float64     `json:"sill_height" yaml:"sill_height"` // floor to bottom of opening (meters)
}

// Corner is a detected point where two or more wall endpoints meet.
//
// Corners are analysis output for a single request; they always
// reference at least two distinct wall IDs.
type Corner struct {
	Point   geom.Point2D `json:"point"`
	WallIDs []string     `json:"wall_ids"`
	Angle   float64      `json:"angle"` // interior angle in radians
}
