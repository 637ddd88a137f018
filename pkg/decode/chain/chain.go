package chain

import (
	"context"

	"github.com/ib-77/bitrail/pkg/decode"
)

// Chain binds a decode result to the cursor it was read from.
type Chain[T any] struct {
	ctx    context.Context
	cursor *decode.Cursor
	start  int
	result decode.Result[T]
}

// Start creates a chain reading from c. The chain's value is empty until the
// first Then.
func Start(ctx context.Context, c *decode.Cursor) *Chain[struct{}] {
	return &Chain[struct{}]{
		ctx:    ctx,
		cursor: c,
		start:  c.Offset(),
		result: decode.Success(struct{}{}, 0),
	}
}

// FromBytes creates a chain over a new cursor on data.
func FromBytes(ctx context.Context, data []byte) *Chain[struct{}] {
	return Start(ctx, decode.NewCursor(data))
}

// Result returns the outcome of the last step. Consumed counts every byte read
// since the chain started.
func (c *Chain[T]) Result() decode.Result[T] {
	return c.result
}

// Cursor returns the cursor the chain reads from.
func (c *Chain[T]) Cursor() *decode.Cursor {
	return c.cursor
}

// Value returns the current value and the first error of the chain.
func (c *Chain[T]) Value() (T, error) {
	return c.result.Result(), c.result.Err()
}

func (c *Chain[T]) consumed() int {
	return c.cursor.Offset() - c.start
}

func next[T, U any](c *Chain[T], r decode.Result[U]) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, cursor: c.cursor, start: c.start, result: r}
}

// carry moves a failed or cancelled result to the next value type.
func carry[T, U any](c *Chain[T]) *Chain[U] {
	if c.result.IsCancel() {
		return next(c, decode.Cancel[U](c.result.Err()))
	}
	return next(c, decode.Fail[U](c.result.Err(), c.consumed()))
}

func (c *Chain[T]) halted() bool {
	return !c.result.IsSuccess()
}

func (c *Chain[T]) cancelled() error {
	if err := c.ctx.Err(); err != nil {
		return context.Cause(c.ctx)
	}
	return nil
}

// Then decodes the next value with d.
func Then[T, U any](c *Chain[T], d decode.Decoder[U]) *Chain[U] {
	if c.halted() {
		return carry[T, U](c)
	}
	if err := c.cancelled(); err != nil {
		return next(c, decode.Cancel[U](err))
	}
	v, err := d.Decode(c.cursor)
	if err != nil {
		return next(c, decode.Fail[U](err, c.consumed()))
	}
	return next(c, decode.Success(v, c.consumed()))
}

// Read decodes the next value into dst and keeps the current value.
func Read[T, U any](c *Chain[T], d decode.Decoder[U], dst *U) *Chain[T] {
	r := Then(c, d)
	if !r.result.IsSuccess() {
		return carry[U, T](r)
	}
	*dst = r.result.Result()
	return next(c, decode.Success(c.result.Result(), r.consumed()))
}

// ThenTry picks the next decoder from the current value and runs it.
func ThenTry[T, U any](c *Chain[T], choose func(context.Context, T) (decode.Decoder[U], error)) *Chain[U] {
	if c.halted() {
		return carry[T, U](c)
	}
	d, err := choose(c.ctx, c.result.Result())
	if err != nil {
		return next(c, decode.Fail[U](err, c.consumed()))
	}
	return Then(c, d)
}

// Map transforms the current value without reading.
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	if c.halted() {
		return carry[T, U](c)
	}
	return next(c, decode.Success(onSuccess(c.ctx, c.result.Result()), c.consumed()))
}

// MapTry transforms the current value with a function that can fail.
func MapTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	if c.halted() {
		return carry[T, U](c)
	}
	v, err := tryOnSuccess(c.ctx, c.result.Result())
	if err != nil {
		return next(c, decode.Fail[U](err, c.consumed()))
	}
	return next(c, decode.Success(v, c.consumed()))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	if c.result.IsSuccess() {
		onSuccess(c.ctx, c.result.Result())
	}
	return c
}

// Finally collapses the chain into a final value.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	switch {
	case c.result.IsSuccess():
		return onSuccess(c.ctx, c.result.Result())
	case c.result.IsCancel():
		return onCancel(c.ctx, c.result.Err())
	default:
		return onFailure(c.ctx, c.result.Err())
	}
}
