package decode

// Decode runs d over data and returns the value and the number of bytes it used.
// Bytes left over are not an error; see DecodeExact.
func Decode[T any](d Decoder[T], data []byte) (T, int, error) {
	c := NewCursor(data)
	v, err := d.Decode(c)
	return v, c.Offset(), err
}

// DecodeExact is Decode that also fails when bytes are left after the value.
func DecodeExact[T any](d Decoder[T], data []byte) (T, error) {
	c := NewCursor(data)
	v, err := d.Decode(c)
	if err != nil {
		return v, err
	}
	if c.HasMore() {
		var zero T
		return zero, &TrailingError{Left: c.Remaining()}
	}
	return v, nil
}

// Run decodes data and packs the outcome into a Result.
func Run[T any](d Decoder[T], data []byte, strict bool) Result[T] {
	c := NewCursor(data)
	v, err := d.Decode(c)
	if err != nil {
		return Fail[T](err, c.Offset())
	}
	if strict && c.HasMore() {
		return Fail[T](&TrailingError{Left: c.Remaining()}, c.Offset())
	}
	return Success(v, c.Offset())
}
