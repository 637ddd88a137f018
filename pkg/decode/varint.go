package decode

import "encoding/binary"

// Uvarint reads an unsigned LEB128 varint as written by binary.PutUvarint.
func Uvarint() Decoder[uint64] {
	return Func[uint64](func(c *Cursor) (uint64, error) {
		v, n := binary.Uvarint(c.Rest())
		if err := varintErr(c, n); err != nil {
			return 0, err
		}
		c.next += n
		return v, nil
	})
}

// Varint reads a zig-zag signed varint as written by binary.PutVarint.
func Varint() Decoder[int64] {
	return Func[int64](func(c *Cursor) (int64, error) {
		v, n := binary.Varint(c.Rest())
		if err := varintErr(c, n); err != nil {
			return 0, err
		}
		c.next += n
		return v, nil
	})
}

func varintErr(c *Cursor, n int) error {
	switch {
	case n == 0:
		// every remaining byte had the continuation bit set
		return c.insufficient(c.Remaining() + 1)
	case n < 0:
		return ErrOverflow
	}
	return nil
}
