package combinators

import "github.com/ib-77/bitrail/pkg/decode"

// Pair is the value of two decoders run back to back.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ChainDecoder runs two independent decoders one after the other.
type ChainDecoder[A, B any] struct {
	first  decode.Decoder[A]
	second decode.Decoder[B]
}

// Chain returns a decoder for first followed by second.
//
// A failure of first is reported as Left and second is not run. A failure of
// second is reported as Right; the cursor then stays past the bytes of first.
// Wrap the result in Atomic for all-or-nothing consumption.
func Chain[A, B any](first decode.Decoder[A], second decode.Decoder[B]) ChainDecoder[A, B] {
	return ChainDecoder[A, B]{first: first, second: second}
}

func (ch ChainDecoder[A, B]) Decode(c *decode.Cursor) (Pair[A, B], error) {
	a, err := ch.first.Decode(c)
	if err != nil {
		return Pair[A, B]{}, Left[error, error](err)
	}
	b, err := ch.second.Decode(c)
	if err != nil {
		return Pair[A, B]{}, Right[error, error](err)
	}
	return Pair[A, B]{First: a, Second: b}, nil
}
