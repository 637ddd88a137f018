package combinators

import (
	"fmt"

	"github.com/ib-77/bitrail/pkg/decode"
)

// SelectError wraps a failure of the step that picks the second decoder of ThenTry.
type SelectError struct {
	Err error
}

func (e *SelectError) Error() string {
	return fmt.Sprintf("select decoder: %v", e.Err)
}

func (e *SelectError) Unwrap() error {
	return e.Err
}

// ThenTryDecoder decodes a value, uses it to choose the next decoder and runs that.
type ThenTryDecoder[T, U any] struct {
	d      decode.Decoder[T]
	choose func(T) (decode.Decoder[U], error)
}

// ThenTry returns a decoder whose second stage depends on the value of the first.
//
// A failure of d is reported as Left. A failure of choose is reported as Right
// holding a *SelectError, and a failure of the chosen decoder as Right holding
// its own error.
func ThenTry[T, U any](d decode.Decoder[T], choose func(T) (decode.Decoder[U], error)) ThenTryDecoder[T, U] {
	return ThenTryDecoder[T, U]{d: d, choose: choose}
}

func (t ThenTryDecoder[T, U]) Decode(c *decode.Cursor) (U, error) {
	var zero U
	v, err := t.d.Decode(c)
	if err != nil {
		return zero, Left[error, error](err)
	}

	next, err := t.choose(v)
	if err != nil {
		return zero, Right[error, error](&SelectError{Err: err})
	}
	if next == nil {
		return zero, Right[error, error](&SelectError{Err: fmt.Errorf("no decoder for %v", v)})
	}

	out, err := next.Decode(c)
	if err != nil {
		return zero, Right[error, error](err)
	}
	return out, nil
}
