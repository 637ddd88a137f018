package combinators

import "github.com/ib-77/bitrail/pkg/decode"

// AtomicDecoder restores the cursor when the wrapped decoder fails.
type AtomicDecoder[T any] struct {
	d decode.Decoder[T]
}

func Atomic[T any](d decode.Decoder[T]) AtomicDecoder[T] {
	return AtomicDecoder[T]{d: d}
}

func (a AtomicDecoder[T]) Decode(c *decode.Cursor) (T, error) {
	mark := c.Mark()
	v, err := a.d.Decode(c)
	if err != nil {
		c.Reset(mark)
	}
	return v, err
}
