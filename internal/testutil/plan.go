// Package testutil provides shared builders for frame generation tests.
package testutil

import (
	"github.com/framewright/framegen/internal/geom"
	"github.com/framewright/framegen/internal/model"
)

// Wall builds a wall segment from floor-plane coordinates.
func Wall(id string, sx, sz, ex, ez float64) model.Wall {
	return model.Wall{
		ID:    id,
		Start: geom.Point2D{X: sx, Z: sz},
		End:   geom.Point2D{X: ex, Z: ez},
	}
}

// Context builds a BuildingContext with default params and config.
func Context(walls ...model.Wall) *model.BuildingContext {
	return model.NewBuildingContext(walls, model.DefaultFrameParams(), model.DefaultGenerationConfig())
}
