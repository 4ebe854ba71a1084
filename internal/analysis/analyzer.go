package analysis

import (
	"math"
	"sort"

	"github.com/framewright/framegen/internal/geom"
	"github.com/framewright/framegen/internal/model"
)

// Tolerance is the endpoint snap distance: endpoints within the same
// 10mm grid cell are treated as coincident.
const Tolerance = 0.01

// WallAnalyzer detects corners, T-junctions, and other endpoint
// meetings from the walls in a BuildingContext.
type WallAnalyzer struct{}

// NewWallAnalyzer creates a wall analyzer.
func NewWallAnalyzer() *WallAnalyzer {
	return &WallAnalyzer{}
}

// Analyze runs all analysis passes and populates the context.
func (a *WallAnalyzer) Analyze(ctx *model.BuildingContext) {
	ctx.Corners = a.detectCorners(ctx)
}

// gridKey is an integer snap key for endpoint grouping. Integer grid
// coordinates avoid the locale and formatting pitfalls of stringified
// floats while keeping the 10mm tolerance semantics.
type gridKey struct {
	x, z int64
}

func snapKey(p geom.Point2D) gridKey {
	return gridKey{
		x: int64(math.Round(p.X / Tolerance)),
		z: int64(math.Round(p.Z / Tolerance)),
	}
}

// endpointRecord is one wall endpoint observed at a grid cell.
type endpointRecord struct {
	wallID string
	point  geom.Point2D
}

// detectCorners finds points where two or more wall endpoints meet.
//
// The corner location is the arithmetic mean of the grouped endpoints,
// not the snapped grid point, so near-coincident endpoints average out
// instead of quantizing to the grid.
func (a *WallAnalyzer) detectCorners(ctx *model.BuildingContext) []model.Corner {
	endpoints := make(map[gridKey][]endpointRecord)
	for _, wall := range ctx.Walls {
		for _, pt := range []geom.Point2D{wall.Start, wall.End} {
			key := snapKey(pt)
			endpoints[key] = append(endpoints[key], endpointRecord{wallID: wall.ID, point: pt})
		}
	}

	keys := make([]gridKey, 0, len(endpoints))
	for key := range endpoints {
		keys = append(keys, key)
	}
	// Fixed iteration order so corner output is reproducible.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].x != keys[j].x {
			return keys[i].x < keys[j].x
		}
		return keys[i].z < keys[j].z
	})

	var corners []model.Corner
	for _, key := range keys {
		records := endpoints[key]
		if len(records) < 2 {
			continue
		}

		wallIDs := distinctWallIDs(records)
		if len(wallIDs) < 2 {
			// Both endpoints of the same wall snapped together
			// (a degenerate near-zero-length wall); not a corner.
			continue
		}

		var sum geom.Point2D
		for _, r := range records {
			sum = sum.Add(r.point)
		}
		avg := sum.Scale(1.0 / float64(len(records)))

		corners = append(corners, model.Corner{
			Point:   avg,
			WallIDs: wallIDs,
			Angle:   cornerAngle(ctx, wallIDs, avg),
		})
	}

	return corners
}

// distinctWallIDs de-duplicates wall IDs preserving first-seen order.
func distinctWallIDs(records []endpointRecord) []string {
	seen := make(map[string]bool, len(records))
	var ids []string
	for _, r := range records {
		if !seen[r.wallID] {
			seen[r.wallID] = true
			ids = append(ids, r.wallID)
		}
	}
	return ids
}

// cornerAngle computes the interior angle between the first two walls
// meeting at cornerPt.
//
// For each wall the direction points away from the corner: end-start if
// the wall starts at the corner, start-end otherwise. If fewer than two
// usable directions exist the angle degrades to pi (a straight,
// non-turning junction) rather than failing.
func cornerAngle(ctx *model.BuildingContext, wallIDs []string, cornerPt geom.Point2D) float64 {
	if len(wallIDs) < 2 {
		return math.Pi
	}

	var directions []geom.Vector2D
	for _, id := range wallIDs[:2] {
		wall := ctx.Wall(id)
		if wall == nil {
			continue
		}
		var dir geom.Vector2D
		if wall.Start.DistanceTo(cornerPt) < Tolerance {
			dir = geom.Direction(wall.Start, wall.End)
		} else {
			dir = geom.Direction(wall.End, wall.Start)
		}
		if dir.Length() > geom.Epsilon {
			directions = append(directions, dir.Normalized())
		}
	}

	if len(directions) < 2 {
		return math.Pi
	}
	return directions[0].AngleTo(directions[1])
}
