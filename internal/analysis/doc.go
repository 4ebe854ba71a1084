// Package analysis derives geometric metadata from raw wall input.
//
// The only pass shipped today is corner detection: wall endpoints are
// snapped onto a 10mm grid, buckets with endpoints from two or more
// distinct walls become corners, and each corner gets the interior angle
// between the first two participating walls.
//
// The pass is deterministic: snap keys are integer grid coordinates (not
// formatted strings), and detected corners are sorted by grid cell before
// being written to the context, so the same floor plan always produces
// the same corner list in the same order.
//
// Analyzers mutate only their own section of the BuildingContext
// (Corners); they never touch Members.
package analysis
