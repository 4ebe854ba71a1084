// Package geom provides the 2D/3D geometric primitives used throughout
// the generator.
//
// All operations are pure and deterministic: no package state, no
// randomness, no wall-clock dependence. The analyzer and every framing
// rule build on these primitives, so determinism here is what makes
// frame generation reproducible end to end.
//
// Conventions:
//   - The floor plane is X-Z (Three.js convention); Y is up.
//   - Lengths are meters.
//   - Normalizing a vector shorter than Epsilon returns the zero vector
//     rather than failing ("too short to normalize").
package geom
