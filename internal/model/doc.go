// Package model provides the canonical data types for frame generation.
//
// This package is the foundational layer: every other internal package
// imports model; model imports only internal/geom. This keeps the type
// layer free of circular dependencies.
//
// Key design constraints:
//   - All JSON tags use snake_case.
//   - MemberType and OpeningKind are closed string enums with Valid()
//     checks; rules must not invent values outside the registered sets.
//   - TimberFrame stats are derived from the member list at construction
//     and never mutated independently.
//   - A BuildingContext is exclusively owned by one generation call. It
//     is never shared or reused across requests.
package model
