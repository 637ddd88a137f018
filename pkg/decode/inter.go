package decode

// Decoder consumes bytes from a cursor and produces a T.
type Decoder[T any] interface {
	// Decode reads one value. On success the cursor has advanced by exactly
	// the bytes the value occupied.
	Decode(c *Cursor) (T, error)
}

// Func adapts a plain function to the Decoder interface.
type Func[T any] func(c *Cursor) (T, error)

func (f Func[T]) Decode(c *Cursor) (T, error) {
	return f(c)
}

// ResultProvider is implemented by decode outcomes that can be inspected
// after the cursor is gone.
type ResultProvider[T any] interface {
	// Result returns the decoded value
	Result() T
	// Err returns the error if decoding failed
	Err() error
	// IsSuccess returns true if the value was decoded
	IsSuccess() bool
	// Consumed returns the bytes read by the decode run
	Consumed() int
}
