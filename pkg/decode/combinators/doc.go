// Package combinators glues decoders into pipelines.
//
// Every combinator is itself a decode.Decoder, so pipelines nest freely:
// - Then: pure post-processing of a decoded value
// - Try: fallible post-processing (errors tagged Left/Right)
// - ThenTry: pick the next decoder from the previous value, then run it
// - Chain: two independent values back to back, as a Pair
// - Sequence/Repeat: many values of one type
// - Atomic: rewind the cursor when the wrapped decoder fails
// - Traced: debug logging around a decoder
//
// When two stages with separate failure sources are composed, the failure is
// reported as an Either: Left for the first stage, Right for the second.
// Nested composition yields nested Either values; use errors.As with Error to
// take one apart, or errors.Is to match a leaf sentinel through any nesting.
package combinators
