package combinators

import (
	"fmt"

	"github.com/ib-77/bitrail/pkg/decode"
)

// StepError reports which decoder of a sequence failed.
type StepError struct {
	Index int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Index, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// SequenceDecoder runs decoders of one value type in order.
type SequenceDecoder[T any] struct {
	ds []decode.Decoder[T]
}

// Sequence returns a decoder that runs ds in order and collects their values.
// It stops at the first failure.
func Sequence[T any](ds ...decode.Decoder[T]) SequenceDecoder[T] {
	return SequenceDecoder[T]{ds: append([]decode.Decoder[T](nil), ds...)}
}

func (s SequenceDecoder[T]) Decode(c *decode.Cursor) ([]T, error) {
	out := make([]T, 0, len(s.ds))
	for i, d := range s.ds {
		v, err := d.Decode(c)
		if err != nil {
			return nil, &StepError{Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Repeat returns a decoder that runs d n times.
func Repeat[T any](n int, d decode.Decoder[T]) decode.Decoder[[]T] {
	return decode.Func[[]T](func(c *decode.Cursor) ([]T, error) {
		out := make([]T, 0, n)
		for i := 0; i < n; i++ {
			v, err := d.Decode(c)
			if err != nil {
				return nil, &StepError{Index: i, Err: err}
			}
			out = append(out, v)
		}
		return out, nil
	})
}
