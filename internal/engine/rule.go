package engine

import "github.com/framewright/framegen/internal/model"

// DefaultPriority is the priority assigned to rules that do not care
// about ordering. Lower priority runs earlier.
const DefaultPriority = 100

// FramingRule is the contract every generation rule implements.
//
// Rules are:
//   - Self-contained: each generates one specific kind of framing member
//   - Composable: multiple rules run in sequence via the registry
//   - Conditional: each rule decides if it applies to the current context
//
// Applies and Generate must treat the context as read-only; the
// generator owns all mutation. Generate returns the members to append,
// it never appends them itself.
type FramingRule interface {
	// ID returns the globally unique, stable rule identifier
	// (e.g. "wall.platform_frame").
	ID() string

	// Name returns the human-readable rule label
	// (e.g. "Platform Wall Framing").
	Name() string

	// Priority orders rule execution; lower runs earlier.
	// Rules without an ordering preference return DefaultPriority.
	Priority() int

	// Dependencies lists rule IDs that must execute before this rule,
	// independent of priority. IDs not present among the applicable
	// candidates contribute no ordering constraint.
	Dependencies() []string

	// Applies reports whether the rule should run for the given
	// context. It is a pure predicate: no mutation, no side effects.
	Applies(ctx *model.BuildingContext) bool

	// Generate produces timber members for the given context. It may
	// read any part of the context (walls, params, config, corners,
	// members emitted by earlier rules) but must not mutate it.
	Generate(ctx *model.BuildingContext) []model.TimberMember
}
