package stream

import (
	"context"

	"github.com/google/uuid"
)

// Frame is one independent input to decode.
type Frame struct {
	ID   uuid.UUID
	Data []byte
}

func NewFrame(data []byte) Frame {
	return Frame{ID: uuid.New(), Data: data}
}

// ToFrames feeds data into a channel of frames until ctx is done.
func ToFrames(ctx context.Context, data ...[]byte) <-chan Frame {
	in := make(chan Frame)

	go func() {
		defer close(in)

		for _, d := range data {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- NewFrame(d):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains out until it is closed. The output of Run is always closed
// once its input closes or its context is done, including the cancelled
// results it reports after cancellation.
func Collect[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
