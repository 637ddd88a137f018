//go:build !bitrail_noalloc

package decode

import (
	"fmt"
	"math"
)

// AllocEnabled reports whether decoders that need growable storage are built in.
const AllocEnabled = true

// ByteVecDecoder reads a caller-sized run of bytes into a new slice.
type ByteVecDecoder struct {
	n int
}

func ByteVec(n int) ByteVecDecoder {
	return ByteVecDecoder{n: n}
}

func (d ByteVecDecoder) Decode(c *Cursor) ([]byte, error) {
	return takeVec(c, d.n)
}

// LengthPrefixedDecoder reads a length with one decoder and then that many bytes.
// A failure at either step leaves the cursor where it started.
type LengthPrefixedDecoder[N uint8 | uint16 | uint32 | uint64 | int64] struct {
	length Decoder[N]
	max    int
}

// LengthPrefixed returns a decoder for a byte sequence preceded by its length.
// A max of zero means no limit.
func LengthPrefixed[N uint8 | uint16 | uint32 | uint64 | int64](length Decoder[N], max int) LengthPrefixedDecoder[N] {
	return LengthPrefixedDecoder[N]{length: length, max: max}
}

func (d LengthPrefixedDecoder[N]) Decode(c *Cursor) ([]byte, error) {
	mark := c.Mark()
	n, err := d.length.Decode(c)
	if err != nil {
		c.Reset(mark)
		return nil, err
	}
	if n < 0 {
		c.Reset(mark)
		return nil, ErrNegativeLength
	}
	if d.max > 0 && uint64(n) > uint64(d.max) {
		c.Reset(mark)
		return nil, fmt.Errorf("decode: length %d exceeds limit %d", uint64(n), d.max)
	}
	if uint64(n) > uint64(c.Remaining()) {
		header := c.Offset() - mark
		need := math.MaxInt
		if uint64(n) <= uint64(math.MaxInt-header) {
			need = header + int(n)
		}
		have := header + c.Remaining()
		c.Reset(mark)
		return nil, &InsufficientError{Need: need, Have: have, Offset: mark}
	}
	b, err := takeVec(c, int(n))
	if err != nil {
		c.Reset(mark)
		return nil, err
	}
	return b, nil
}

func takeVec(c *Cursor, n int) ([]byte, error) {
	b, err := c.Take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, n)
	return append(out, b...), nil
}
