package decode

import "fmt"

// ByteArrayDecoder reads a fixed number of bytes.
type ByteArrayDecoder struct {
	n int
}

// ByteArray returns a decoder for exactly n bytes. The value is a copy, so it
// stays valid after the input buffer is reused.
func ByteArray(n int) ByteArrayDecoder {
	if n < 0 {
		panic(fmt.Sprintf("decode: negative byte array length %d", n))
	}
	return ByteArrayDecoder{n: n}
}

func (d ByteArrayDecoder) Len() int {
	return d.n
}

func (d ByteArrayDecoder) Decode(c *Cursor) ([]byte, error) {
	b, err := c.Take(d.n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, d.n)
	copy(out, b)
	return out, nil
}

// U8Decoder reads a single byte.
type U8Decoder struct{}

func U8() U8Decoder {
	return U8Decoder{}
}

func (U8Decoder) Decode(c *Cursor) (uint8, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 reads a single byte as a two's complement int8.
func I8() Decoder[int8] {
	return Func[int8](func(c *Cursor) (int8, error) {
		b, err := c.Take(1)
		if err != nil {
			return 0, err
		}
		return int8(b[0]), nil
	})
}

// Bool reads one byte; zero is false, anything else true.
func Bool() Decoder[bool] {
	return Func[bool](func(c *Cursor) (bool, error) {
		b, err := c.Take(1)
		if err != nil {
			return false, err
		}
		return b[0] != 0, nil
	})
}
