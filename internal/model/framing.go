package model

import "github.com/framewright/framegen/internal/geom"

// MemberType identifies the structural role of a timber member.
type MemberType string

const (
	MemberStud        MemberType = "stud"
	MemberBottomPlate MemberType = "bottom_plate"
	MemberTopPlate    MemberType = "top_plate"
	MemberNogging     MemberType = "nogging"
	MemberKingStud    MemberType = "king_stud"
	MemberJackStud    MemberType = "jack_stud"
	MemberCrippleStud MemberType = "cripple_stud"
	MemberHeader      MemberType = "header"
	MemberSill        MemberType = "sill"
	MemberJoist       MemberType = "joist"
	MemberRimJoist    MemberType = "rim_joist"
	MemberBlocking    MemberType = "blocking"
	MemberRafter      MemberType = "rafter"
	MemberRidgeBeam   MemberType = "ridge_beam"
	MemberCollarTie   MemberType = "collar_tie"
)

// memberTypes is the closed set of member types. Valid() checks against
// this set; rules emitting anything else are defective.
var memberTypes = map[MemberType]bool{
	MemberStud:        true,
	MemberBottomPlate: true,
	MemberTopPlate:    true,
	MemberNogging:     true,
	MemberKingStud:    true,
	MemberJackStud:    true,
	MemberCrippleStud: true,
	MemberHeader:      true,
	MemberSill:        true,
	MemberJoist:       true,
	MemberRimJoist:    true,
	MemberBlocking:    true,
	MemberRafter:      true,
	MemberRidgeBeam:   true,
	MemberCollarTie:   true,
}

// Valid reports whether t is a known member type.
func (t MemberType) Valid() bool {
	return memberTypes[t]
}

// TimberMember is a single piece of timber positioned in 3D space.
//
// Members are append-only once created: rules emit them, the generator
// appends them, nothing mutates them afterwards.
type TimberMember struct {
	Start  geom.Point3D      `json:"start"`
	End    geom.Point3D      `json:"end"`
	Width  float64           `json:"width"` // cross-section narrow face (meters)
	Depth  float64           `json:"depth"` // cross-section wide face (meters)
	Type   MemberType        `json:"type"`
	WallID string            `json:"wall_id"`
	Tags   map[string]string `json:"tags,omitempty"` // extensible metadata (plate layer, etc.)
}

// TimberFrame is the complete generated frame.
//
// Stats are derived from Members at construction time and stay
// consistent with them; use NewTimberFrame rather than constructing the
// struct directly.
type TimberFrame struct {
	Members []TimberMember `json:"members"`
	Stats   FrameStats     `json:"stats"`
}

// NewTimberFrame builds a frame from the final member list, deriving
// stats in the same step.
func NewTimberFrame(members []TimberMember) TimberFrame {
	return TimberFrame{
		Members: members,
		Stats:   StatsFromMembers(members),
	}
}

// FrameStats summarizes a generated frame.
type FrameStats struct {
	TotalMembers int `json:"total_members"`
	Studs        int `json:"studs"`
	Plates       int `json:"plates"` // bottom + top plates
	Noggings     int `json:"noggings"`
	Other        int `json:"other"`
}

// StatsFromMembers counts member categories over a member list.
func StatsFromMembers(members []TimberMember) FrameStats {
	var studs, plates, noggings int
	for _, m := range members {
		switch m.Type {
		case MemberStud:
			studs++
		case MemberBottomPlate, MemberTopPlate:
			plates++
		case MemberNogging:
			noggings++
		}
	}
	return FrameStats{
		TotalMembers: len(members),
		Studs:        studs,
		Plates:       plates,
		Noggings:     noggings,
		Other:        len(members) - studs - plates - noggings,
	}
}
