package combinators

import "github.com/ib-77/bitrail/pkg/decode"

// ThenDecoder runs a decoder and maps its value with a function that cannot fail.
type ThenDecoder[T, U any] struct {
	d decode.Decoder[T]
	f func(T) U
}

// Then returns a decoder yielding f applied to the value of d.
// Errors from d are returned unchanged; f never reads from the cursor.
func Then[T, U any](d decode.Decoder[T], f func(T) U) ThenDecoder[T, U] {
	return ThenDecoder[T, U]{d: d, f: f}
}

func (t ThenDecoder[T, U]) Decode(c *decode.Cursor) (U, error) {
	v, err := t.d.Decode(c)
	if err != nil {
		var zero U
		return zero, err
	}
	return t.f(v), nil
}

// TryDecoder runs a decoder and maps its value with a function that can fail.
type TryDecoder[T, U any] struct {
	d decode.Decoder[T]
	f func(T) (U, error)
}

// Try returns a decoder yielding f applied to the value of d.
// A failure of d is reported as Left, a failure of f as Right.
func Try[T, U any](d decode.Decoder[T], f func(T) (U, error)) TryDecoder[T, U] {
	return TryDecoder[T, U]{d: d, f: f}
}

func (t TryDecoder[T, U]) Decode(c *decode.Cursor) (U, error) {
	var zero U
	v, err := t.d.Decode(c)
	if err != nil {
		return zero, Left[error, error](err)
	}
	out, err := t.f(v)
	if err != nil {
		return zero, Right[error, error](err)
	}
	return out, nil
}
