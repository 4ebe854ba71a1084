package rules

import (
	"github.com/framewright/framegen/internal/engine"
	"github.com/framewright/framegen/internal/geom"
	"github.com/framewright/framegen/internal/model"
)

// PlatformFrameRuleID is the stable identifier of the platform wall
// framing rule.
const PlatformFrameRuleID = "wall.platform_frame"

// Geometric tolerances for stud placement. A wall shorter than
// minWallLength produces no members at all; a remainder larger than
// endStudGap after the last pitched stud forces a closing stud at the
// wall end. Remainders between the two are absorbed as float snap.
const (
	minWallLength = 0.01
	endStudGap    = 0.05
)

// PlatformWallFramingRule is standard platform framing: bottom plate,
// top plate (optionally doubled), studs at regular spacing, and
// optional mid-height noggings, per wall.
//
// Walls do not interact in this rule; each is framed independently.
type PlatformWallFramingRule struct{}

// NewPlatformWallFramingRule creates the platform framing rule.
func NewPlatformWallFramingRule() *PlatformWallFramingRule {
	return &PlatformWallFramingRule{}
}

// ID implements engine.FramingRule.
func (r *PlatformWallFramingRule) ID() string { return PlatformFrameRuleID }

// Name implements engine.FramingRule.
func (r *PlatformWallFramingRule) Name() string { return "Platform Wall Framing" }

// Priority runs this rule early: basic wall framing is foundational for
// any future rule that builds on existing members.
func (r *PlatformWallFramingRule) Priority() int { return 50 }

// Dependencies implements engine.FramingRule; platform framing is the
// base layer and depends on nothing.
func (r *PlatformWallFramingRule) Dependencies() []string { return nil }

// Applies reports true when there is at least one wall and the
// configured strategy is platform framing.
func (r *PlatformWallFramingRule) Applies(ctx *model.BuildingContext) bool {
	return len(ctx.Walls) > 0 && ctx.Config.WallFraming == model.FramingPlatform
}

// Generate frames every wall independently.
func (r *PlatformWallFramingRule) Generate(ctx *model.BuildingContext) []model.TimberMember {
	var members []model.TimberMember
	for _, wall := range ctx.Walls {
		members = append(members, r.frameWall(wall, ctx.Params)...)
	}
	return members
}

// frameWall emits plates, studs, and noggings for a single wall.
func (r *PlatformWallFramingRule) frameWall(wall model.Wall, params model.FrameParams) []model.TimberMember {
	length := wall.Length()
	if length < minWallLength {
		// Degenerate wall: skip, not an error.
		return nil
	}

	dir := geom.Direction(wall.Start, wall.End).Normalized()

	sw := params.StudWidth
	sd := params.StudDepth
	wh := params.WallHeight

	var members []model.TimberMember

	// at places a point t meters along the wall at height y; plate ends
	// use the wall endpoints directly so they stay exact.
	at := func(t, y float64) geom.Point3D {
		return geom.Point3D{
			X: wall.Start.X + dir.X*t,
			Y: y,
			Z: wall.Start.Z + dir.Z*t,
		}
	}
	startAt := func(y float64) geom.Point3D {
		return geom.Point3D{X: wall.Start.X, Y: y, Z: wall.Start.Z}
	}
	endAt := func(y float64) geom.Point3D {
		return geom.Point3D{X: wall.End.X, Y: y, Z: wall.End.Z}
	}

	// Bottom plate spans the wall at floor level.
	members = append(members, model.TimberMember{
		Start:  startAt(0),
		End:    endAt(0),
		Width:  sw,
		Depth:  sd,
		Type:   model.MemberBottomPlate,
		WallID: wall.ID,
	})

	// Top plate; its own thickness is reserved below the nominal wall
	// height.
	members = append(members, model.TimberMember{
		Start:  startAt(wh - sw),
		End:    endAt(wh - sw),
		Width:  sw,
		Depth:  sd,
		Type:   model.MemberTopPlate,
		WallID: wall.ID,
	})

	plateOffset := sw
	if params.DoubleTopPlate {
		plateOffset = 2 * sw
		members = append(members, model.TimberMember{
			Start:  startAt(wh - 2*sw),
			End:    endAt(wh - 2*sw),
			Width:  sw,
			Depth:  sd,
			Type:   model.MemberTopPlate,
			WallID: wall.ID,
			Tags:   map[string]string{"layer": "second"},
		})
	}

	// Studs rest on the bottom plate and stop below whichever top-plate
	// stack is configured.
	positions := studPositions(length, params.StudSpacing)
	for _, t := range positions {
		members = append(members, model.TimberMember{
			Start:  at(t, sw),
			End:    at(t, wh-plateOffset),
			Width:  sw,
			Depth:  sd,
			Type:   model.MemberStud,
			WallID: wall.ID,
		})
	}

	// Noggings brace each adjacent stud pair at half wall height.
	if params.Noggings && len(positions) >= 2 {
		nogY := wh / 2
		for i := 0; i < len(positions)-1; i++ {
			members = append(members, model.TimberMember{
				Start:  at(positions[i], nogY),
				End:    at(positions[i+1], nogY),
				Width:  sw,
				Depth:  sd,
				Type:   model.MemberNogging,
				WallID: wall.ID,
			})
		}
	}

	return members
}

// studPositions computes stud offsets along a wall.
//
// Studs march from offset 0 at the configured spacing while more than
// minWallLength short of the wall end. If the gap from the last pitched
// stud to the wall end exceeds endStudGap, a closing stud lands on the
// wall end itself - guaranteeing a stud at both ends and bounding the
// final bay width at the cost of one non-uniform spacing. Smaller
// nonzero remainders are tolerated as floating-point snap.
func studPositions(wallLength, spacing float64) []float64 {
	positions := []float64{0}
	for pos := spacing; pos < wallLength-minWallLength; pos += spacing {
		positions = append(positions, pos)
	}
	if wallLength-positions[len(positions)-1] > endStudGap {
		positions = append(positions, wallLength)
	}
	return positions
}

// DefaultRegistry creates a registry with all standard framing rules.
func DefaultRegistry() *engine.Registry {
	registry := engine.NewRegistry()
	registry.Register(NewPlatformWallFramingRule())
	return registry
}
