// Package model defines the HLX domain types and their validated mutators:
// sources, zones, groups, equalizer presets, favorites, front panel,
// infrared, and network state. Every mutator returns a Status alongside an
// *Error so callers can distinguish an effective change from a no-op.
package model

// Identifier is a 1-based index into a domain collection. Zero is reserved
// and never appears on the wire or in a valid model reference.
type Identifier uint8

// IdentifierMin is the smallest valid identifier in any collection.
const IdentifierMin Identifier = 1
