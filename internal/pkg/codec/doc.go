// Package codec moves binary material across text-only boundaries.
//
// It provides the lower-case hex encoding used for every public byte output of the facade,
// a tolerant hex decoder that stops at the first invalid pair instead of failing, and the
// UTF-8 and binary-string conversions used by the key loading path.
package codec
