// Package neon implements the NEON text serialization format: a codec pair
// that encodes an in-memory JSON-equivalent value tree to a compact,
// human-readable text form and decodes it back.
//
// The format is built around three ideas: sigil-prefixed containers
// (#array, @object), length-prefixed arrays with optional shared schemas
// for homogeneous object rows, and aggressive literal compression (number
// abbreviation, field-name abbreviation, boolean/null shortcuts). Number
// abbreviation is lossy for magnitudes that are not whole or one-tenth
// multiples of the K/M/B/T unit: 1234 encodes as 1.2K and decodes as 1200.
//
// The codec itself works on the abstract Value tree; FromJSON and ToJSON
// translate between that tree and textual JSON at the boundary.
package neon
