package decode

// Cursor is a read position over an immutable byte slice.
// A Cursor is owned by a single decode call and is not safe for concurrent use.
type Cursor struct {
	buf  []byte
	next int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{buf: data}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.next
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.next
}

func (c *Cursor) HasMore() bool {
	return c.next < len(c.buf)
}

// Peek returns the next n bytes without moving the cursor.
// The returned slice aliases the input.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if c.Remaining() < n {
		return nil, c.insufficient(n)
	}
	return c.buf[c.next : c.next+n], nil
}

// Take consumes n bytes. When fewer than n bytes remain nothing is consumed.
// The returned slice aliases the input.
func (c *Cursor) Take(n int) ([]byte, error) {
	b, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	c.next += n
	return b, nil
}

// Rest returns the unread bytes without consuming them.
func (c *Cursor) Rest() []byte {
	return c.buf[c.next:]
}

// Mark returns the current position for a later Reset.
func (c *Cursor) Mark() int {
	return c.next
}

// Reset moves the cursor back to a position returned by Mark.
func (c *Cursor) Reset(mark int) {
	if mark < 0 || mark > len(c.buf) {
		panic("decode: cursor reset out of range")
	}
	c.next = mark
}

func (c *Cursor) insufficient(need int) error {
	return &InsufficientError{Need: need, Have: c.Remaining(), Offset: c.next}
}
