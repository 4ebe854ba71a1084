// Package service provides the high-level frame generation facade used
// by the transports (HTTP server, CLI).
//
// FrameService owns a registry and a generator; transports depend on it
// instead of wiring the pipeline themselves.
package service

import (
	"github.com/framewright/framegen/internal/engine"
	"github.com/framewright/framegen/internal/model"
	"github.com/framewright/framegen/internal/rules"
)

// RuleInfo describes a registered rule for listing endpoints.
type RuleInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FrameService validates nothing itself: input validation belongs to
// the plan loader ahead of it, and the core pipeline degrades
// gracefully on partially malformed plans.
type FrameService struct {
	registry  *engine.Registry
	generator *engine.Generator
}

// New creates a FrameService. A nil registry gets the default rule set.
func New(registry *engine.Registry) *FrameService {
	if registry == nil {
		registry = rules.DefaultRegistry()
	}
	return &FrameService{
		registry:  registry,
		generator: engine.NewGenerator(registry),
	}
}

// Generate runs the generation pipeline. A nil params pointer selects
// the default parameter set; a nil config selects the default
// platform/butt configuration.
func (s *FrameService) Generate(walls []model.Wall, params *model.FrameParams, config *model.GenerationConfig) model.TimberFrame {
	p := model.DefaultFrameParams()
	if params != nil {
		p = *params
	}
	return s.generator.Generate(walls, p, config)
}

// ListRules returns id/name pairs for every registered rule, sorted by
// ID.
func (s *FrameService) ListRules() []RuleInfo {
	list := s.registry.List()
	infos := make([]RuleInfo, len(list))
	for i, r := range list {
		infos[i] = RuleInfo{ID: r.ID(), Name: r.Name()}
	}
	return infos
}

// CycleWarnings reports dependency cycles among the registered rules.
// Surfaced at startup and by diagnostics; never fatal.
func (s *FrameService) CycleWarnings() []engine.CycleWarning {
	return engine.AnalyzeRuleCycles(s.registry.List())
}
