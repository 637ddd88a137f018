package combinators

import "fmt"

// Either holds exactly one of a Left or a Right value.
//
// Build values with Left and Right only. Either is comparable with == whenever
// L and R are, so it can be used as a map key; values of different sides are
// never equal.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Error is the error type produced by combinators that merge two failure sources.
type Error = Either[error, error]

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and whether e is a Left.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether e is a Right.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Value returns whichever side is set.
func (e Either[L, R]) Value() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

func (e Either[L, R]) Error() string {
	return fmt.Sprint(e.Value())
}

// Unwrap returns the active side when it is an error.
func (e Either[L, R]) Unwrap() error {
	err, _ := e.Value().(error)
	return err
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold collapses e into a single value.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
