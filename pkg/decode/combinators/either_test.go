package combinators

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEither_Constructors(t *testing.T) {
	t.Parallel()

	l := Left[int, string](5)
	v, ok := l.Left()
	assert.True(t, l.IsLeft())
	assert.False(t, l.IsRight())
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = l.Right()
	assert.False(t, ok)

	r := Right[int, string]("x")
	s, ok := r.Right()
	assert.True(t, r.IsRight())
	assert.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestEither_StructuralEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, Left[int, int](1) == Left[int, int](1))
	assert.False(t, Left[int, int](1) == Left[int, int](2))
	assert.False(t, Left[int, int](0) == Right[int, int](0))
	assert.False(t, Left[int, int](3) == Right[int, int](3))
	assert.True(t, Right[int, int](1) == Right[int, int](1))
	assert.False(t, Right[int, int](1) == Right[int, int](2))
	assert.False(t, Right[int, int](0) == Left[int, int](0))

	seen := map[Either[int, string]]int{}
	seen[Left[int, string](1)]++
	seen[Left[int, string](1)]++
	seen[Right[int, string]("1")]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[Left[int, string](1)])
}

func TestEither_Fold(t *testing.T) {
	t.Parallel()
	show := func(e Either[int, string]) string {
		return Fold(e,
			func(i int) string { return fmt.Sprintf("int:%d", i) },
			func(s string) string { return "str:" + s })
	}
	assert.Equal(t, "int:4", show(Left[int, string](4)))
	assert.Equal(t, "str:q", show(Right[int, string]("q")))
}

func TestEither_AsError(t *testing.T) {
	t.Parallel()
	base := errors.New("boom")

	var err error = Right[error, error](base)
	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, base)

	var e Error
	require.ErrorAs(t, err, &e)
	assert.True(t, e.IsRight())

	assert.Nil(t, Left[int, int](1).Unwrap())
	assert.Equal(t, "Left(1)", Left[int, int](1).String())
	assert.Equal(t, "Right(2)", Right[int, int](2).String())
}
