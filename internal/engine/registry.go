package engine

import (
	"sort"
	"sync"

	"github.com/framewright/framegen/internal/model"
)

// Registry holds all registered framing rules and resolves the
// applicable, dependency-ordered execution sequence for a request.
//
// Registration is expected at process startup. The internal map is
// guarded by a reader-writer lock so that late registration, if an
// embedder ever does it, cannot race concurrent request handling.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]FramingRule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]FramingRule)}
}

// Register adds a rule to the registry, replacing any rule with the
// same ID.
func (r *Registry) Register(rule FramingRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID()] = rule
}

// Unregister removes a rule by ID. Unknown IDs are a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rules, id)
}

// Rule returns the rule with the given ID, or nil if absent.
func (r *Registry) Rule(id string) FramingRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules[id]
}

// List returns all registered rules sorted by ID, so callers (the
// /rules endpoint, the CLI) always see a stable listing.
func (r *Registry) List() []FramingRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]FramingRule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// ApplicableRules returns the rules that apply to the given context in
// their final execution order.
//
// Selection:
//  1. Candidates are all registered rules, narrowed to
//     config.EnabledRules when that list is non-empty.
//  2. config.DisabledRules are removed - the exclusion filter applies
//     even over an explicit enable list.
//  3. Rules whose Applies returns false are dropped.
//
// Ordering: candidates are sorted by priority ascending (stable, with a
// deterministic ID pre-sort for ties), then reordered so that each
// rule's dependencies run first. Unknown rule IDs in either filter or
// in a dependency list are silently ignored.
func (r *Registry) ApplicableRules(ctx *model.BuildingContext) []FramingRule {
	candidates := r.List()
	config := ctx.Config

	if len(config.EnabledRules) > 0 {
		enabled := toSet(config.EnabledRules)
		candidates = filterRules(candidates, func(rule FramingRule) bool {
			return enabled[rule.ID()]
		})
	}

	if len(config.DisabledRules) > 0 {
		disabled := toSet(config.DisabledRules)
		candidates = filterRules(candidates, func(rule FramingRule) bool {
			return !disabled[rule.ID()]
		})
	}

	applicable := filterRules(candidates, func(rule FramingRule) bool {
		return rule.Applies(ctx)
	})

	// Stable sort over the ID-sorted candidate list: ties keep a fixed,
	// reproducible order.
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Priority() < applicable[j].Priority()
	})

	return resolveOrder(applicable)
}

// resolveOrder produces the dependency-respecting execution order.
//
// Each rule in priority order is visited depth-first: dependencies
// first, then the rule itself, each emitted exactly once. A dependency
// ID absent from the applicable set contributes no constraint. The
// traversal marks a rule visited before exploring its dependencies, so
// a dependency cycle terminates quietly instead of recursing forever;
// AnalyzeRuleCycles reports such cycles as warnings out of band.
func resolveOrder(rules []FramingRule) []FramingRule {
	byID := make(map[string]FramingRule, len(rules))
	for _, rule := range rules {
		byID[rule.ID()] = rule
	}

	visited := make(map[string]bool, len(rules))
	ordered := make([]FramingRule, 0, len(rules))

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		rule, ok := byID[id]
		if !ok {
			return
		}
		for _, dep := range rule.Dependencies() {
			visit(dep)
		}
		ordered = append(ordered, rule)
	}

	for _, rule := range rules {
		visit(rule.ID())
	}
	return ordered
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func filterRules(rules []FramingRule, keep func(FramingRule) bool) []FramingRule {
	out := rules[:0:0]
	for _, rule := range rules {
		if keep(rule) {
			out = append(out, rule)
		}
	}
	return out
}
