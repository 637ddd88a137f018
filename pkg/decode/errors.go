package decode

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInsufficient   = errors.New("decode: insufficient data")
	ErrOverflow       = errors.New("decode: varint overflows 64 bits")
	ErrTrailing       = errors.New("decode: trailing bytes after value")
	ErrNegativeLength = errors.New("decode: negative length")
)

// InsufficientError reports a read that needed more bytes than were left.
type InsufficientError struct {
	Need   int
	Have   int
	Offset int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("decode: insufficient data at offset %d: need %d, have %d", e.Offset, e.Need, e.Have)
}

func (e *InsufficientError) Unwrap() error {
	return ErrInsufficient
}

// TrailingError reports bytes left over after a value that had to use all input.
type TrailingError struct {
	Left int
}

func (e *TrailingError) Error() string {
	return fmt.Sprintf("decode: %d trailing bytes after value", e.Left)
}

func (e *TrailingError) Unwrap() error {
	return ErrTrailing
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
