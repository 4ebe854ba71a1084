// Package planfile loads floor plans from YAML or JSON files.
//
// The loader is the validation collaborator that sits ahead of the
// generation pipeline: plans are checked against an embedded CUE schema
// before they reach the core, so schema errors surface with positions
// at the edge while the core keeps its graceful-degradation contract.
//
// Loading also canonicalizes user-supplied identifiers to Unicode NFC.
// Wall IDs are grouped and compared by equality during analysis; two
// visually identical IDs in different normal forms must not be treated
// as distinct walls.
//
// YAML is a superset of JSON, so .json plans go through the same
// decode path.
package planfile
