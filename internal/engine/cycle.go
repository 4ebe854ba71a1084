package engine

import (
	"fmt"
	"sort"
	"strings"
)

// CycleWarning reports a dependency cycle among registered rules.
//
// Cycles are warnings, not errors: the execution-order traversal
// terminates on them (each rule is emitted at most once), so generation
// still completes. The warning exists so operators notice that the
// declared ordering constraints cannot all be honored.
type CycleWarning struct {
	Path    []string `json:"path"`    // cycle path: ["a", "b", "a"]
	Message string   `json:"message"` // human-readable description
}

// AnalyzeRuleCycles performs static cycle analysis over rule
// dependencies.
//
// The algorithm:
//  1. Build a rule -> dependency graph (edges only to registered rules;
//     unknown dependency IDs carry no constraint and no warning)
//  2. Find strongly connected components with Tarjan's algorithm
//  3. Report each SCC of size > 1, and each self-loop, as a warning
//
// A DAG returns an empty list. Output order is deterministic.
func AnalyzeRuleCycles(rules []FramingRule) []CycleWarning {
	if len(rules) == 0 {
		return nil
	}

	known := make(map[string]bool, len(rules))
	for _, rule := range rules {
		known[rule.ID()] = true
	}

	graph := make(map[string][]string, len(rules))
	for _, rule := range rules {
		deps := []string{}
		for _, dep := range rule.Dependencies() {
			if known[dep] {
				deps = append(deps, dep)
			}
		}
		graph[rule.ID()] = deps
	}

	var warnings []CycleWarning
	for _, scc := range tarjanSCC(graph) {
		if len(scc) > 1 {
			sort.Strings(scc)
			path := append(scc, scc[0])
			warnings = append(warnings, CycleWarning{
				Path:    path,
				Message: fmt.Sprintf("dependency cycle detected: %s", strings.Join(path, " -> ")),
			})
		} else if hasSelfLoop(scc[0], graph) {
			id := scc[0]
			warnings = append(warnings, CycleWarning{
				Path:    []string{id, id},
				Message: fmt.Sprintf("rule depends on itself: %s", id),
			})
		}
	}

	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Message < warnings[j].Message })
	return warnings
}

func hasSelfLoop(id string, graph map[string][]string) bool {
	for _, dep := range graph[id] {
		if dep == id {
			return true
		}
	}
	return false
}

// tarjanSCC finds strongly connected components.
//
// Nodes are visited in sorted order so component discovery is
// reproducible. Single-node SCCs without self-loops are not cycles.
func tarjanSCC(graph map[string][]string) [][]string {
	var (
		index   int
		stack   []string
		indices = make(map[string]int, len(graph))
		lowlink = make(map[string]int, len(graph))
		onStack = make(map[string]bool, len(graph))
		sccs    [][]string
	)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	nodes := make([]string, 0, len(graph))
	for node := range graph {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	for _, node := range nodes {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}

	return sccs
}
