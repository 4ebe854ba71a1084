package engine

import (
	"github.com/framewright/framegen/internal/analysis"
	"github.com/framewright/framegen/internal/model"
)

// Generator is the stateless frame generator.
//
// It owns no per-request state: every Generate call builds a fresh
// BuildingContext, runs the analyzer, executes the applicable rules in
// registry order, and returns the assembled frame. The only shared state
// is the registry's static rule set.
type Generator struct {
	registry *Registry
	analyzer *analysis.WallAnalyzer
}

// NewGenerator creates a generator backed by the given registry.
func NewGenerator(registry *Registry) *Generator {
	return &Generator{
		registry: registry,
		analyzer: analysis.NewWallAnalyzer(),
	}
}

// Registry returns the rule registry backing this generator.
func (g *Generator) Registry() *Registry {
	return g.registry
}

// Generate runs the full pipeline for one floor plan.
//
// config may be nil, in which case the default platform/butt
// configuration applies. Generation never fails: malformed input
// degrades per rule (degenerate walls emit nothing, unknown IDs are
// ignored) rather than erroring.
func (g *Generator) Generate(walls []model.Wall, params model.FrameParams, config *model.GenerationConfig) model.TimberFrame {
	cfg := model.DefaultGenerationConfig()
	if config != nil {
		cfg = *config
	}

	ctx := model.NewBuildingContext(walls, params, cfg)

	// Analysis phase - corners, junctions.
	g.analyzer.Analyze(ctx)

	// Generation phase - each rule observes members emitted by the
	// rules before it.
	for _, rule := range g.registry.ApplicableRules(ctx) {
		ctx.AddMembers(rule.Generate(ctx)...)
	}

	return model.NewTimberFrame(ctx.Members)
}
