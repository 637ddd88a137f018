package decode

import (
	"time"

	"github.com/google/uuid"
)

var _ ResultProvider[struct{}] = Result[struct{}]{}

// Result is the outcome of one top-level decode run.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	consumed  int
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T, consumed int) Result[T] {
	return Result[T]{
		result:    r,
		consumed:  consumed,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error, consumed int) Result[T] {
	return Result[T]{
		err:       err,
		consumed:  consumed,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// WithID returns a copy of r carrying the given run id.
func (r Result[T]) WithID(id uuid.UUID) Result[T] {
	r.id = id
	return r
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) Consumed() int {
	return r.consumed
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
