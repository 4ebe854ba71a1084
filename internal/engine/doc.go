// Package engine implements the frame generation pipeline.
//
// The engine is the heart of framegen - it takes a floor plan, runs the
// wall analyzer, resolves the applicable framing rules into a
// deterministic order, executes them, and assembles the final frame.
//
// ARCHITECTURE:
//
// Single Synchronous Pass:
// A generation request is processed start to finish in one call with no
// suspension points and no I/O. This ensures:
//   - Predictable rule evaluation order
//   - Identical output for identical input (no hidden randomness)
//   - Simple reasoning about what each rule observed
//
// Generation Flow:
//  1. A fresh BuildingContext is built from walls + params + config
//  2. The analyzer populates context.Corners
//  3. The registry resolves the applicable, dependency-ordered rule list
//  4. Each rule's Generate output is appended to context.Members
//  5. The final member list becomes a TimberFrame with derived stats
//
// Rules observe all members emitted by earlier rules, enabling
// cross-rule composition.
//
// CRITICAL PATTERNS:
//
// Deterministic Ordering:
// Candidate rules are pre-sorted by ID, then stably sorted by priority
// (lower runs earlier), then reordered by a dependency-respecting
// traversal. The same registry and config always produce the same
// execution order.
//
// Graceful Degradation:
// The pipeline favors silent degradation over failure: degenerate walls
// emit nothing, unknown rule IDs in filters or dependencies are ignored,
// and dependency cycles truncate rather than error. Static cycle
// analysis (AnalyzeRuleCycles) reports cycles as warnings for operators;
// it never makes generation fatal.
//
// Registry Mutability:
// The registry is process-wide shared state, expected to be populated at
// startup. Reads during request handling are guarded by a reader-writer
// lock so runtime registration, if ever used, cannot race in-flight
// requests.
package engine
