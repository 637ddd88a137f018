// Package decode contains the decoder contract and the leaf decoders that the
// combinators build on.
//
// A Decoder[T] consumes bytes from a Cursor and produces a T or an error.
// Decoders hold only configuration fixed at construction, so one decoder can
// be shared by any number of goroutines as long as each one decodes from its
// own Cursor.
//
// Leaf decoders:
// - ByteArray: exactly n bytes
// - U8/I8: a single byte
// - U16..I64 (with BE/LE shorthands): fixed width integers in a byte order
// - Uvarint/Varint: LEB128 variable length integers
// - ByteVec/LengthPrefixed: growable byte sequences (excluded by the
//   bitrail_noalloc build tag)
//
// On insufficient input a leaf decoder fails with an error matching
// ErrInsufficient and leaves the cursor where it was.
package decode
