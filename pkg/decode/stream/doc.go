// Package stream decodes many independent frames concurrently with one shared
// decoder. Each frame gets its own cursor; the decoder is only read.
//
// Worker count, strictness and cancellation behavior are carried on the
// context (WithWorkerOptions, WithStrictOptions, WithProcessOptions), the
// logger via WithLogger.
package stream
