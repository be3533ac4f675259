// Package wire implements a compile-time-composable binary codec for
// wire-level data structures.
//
// A Record is an ordered composition of fields — byte-aligned values,
// arbitrary-bit-width integers, reserved bit regions, and nested records —
// that is mechanically encoded to and decoded from a raw byte buffer.
// Byte-aligned fields and nested records are padded to the next byte
// boundary; adjacent bit fields are packed tightly against one another.
//
// Go has no non-type generic parameters, so sizes that could otherwise be
// resolved at compile time are instead resolved once, at field or Record
// construction, and cached for the lifetime of the value.
package wire
