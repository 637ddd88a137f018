// Package chain provides a fluent wrapper for decoding a record field by field
// from one cursor.
//
// A Chain[T] carries the context, the shared cursor and the result of the last
// step. Once a step fails every following step is skipped, so a hand-written
// record decoder only checks the error once at the end.
//
// Key operations:
// - Start/FromBytes: begin a chain over a cursor or a byte slice
// - Then: decode the next value with a decoder
// - ThenTry: pick the next decoder from the current value
// - Map: transform the current value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
