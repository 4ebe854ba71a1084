package model

// BuildingContext holds all state during a single frame generation pass.
//
// The analyzer writes Corners once; rules append Members through the
// generator. The context is created at the start of a generation call,
// exclusively owned by that call, and discarded when it returns.
//
// INVARIANTS:
//   - Members only grows during generation; entries are never mutated in
//     place or reordered after append.
//   - A context is never shared or reused across concurrent requests.
type BuildingContext struct {
	// Input
	Walls  []Wall
	Params FrameParams
	Config GenerationConfig

	// Analysis results (populated by the analyzer)
	Corners []Corner

	// Output (populated by rules, appended by the generator)
	Members []TimberMember
}

// NewBuildingContext creates a fresh context for one generation pass.
func NewBuildingContext(walls []Wall, params FrameParams, config GenerationConfig) *BuildingContext {
	return &BuildingContext{
		Walls:  walls,
		Params: params,
		Config: config,
	}
}

// AddMembers appends generated members to the context.
func (c *BuildingContext) AddMembers(members ...TimberMember) {
	c.Members = append(c.Members, members...)
}

// Wall returns the wall with the given ID, or nil if absent.
func (c *BuildingContext) Wall(id string) *Wall {
	for i := range c.Walls {
		if c.Walls[i].ID == id {
			return &c.Walls[i]
		}
	}
	return nil
}
