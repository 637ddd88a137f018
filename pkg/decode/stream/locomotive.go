package stream

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ib-77/bitrail/pkg/decode"
)

var ErrCancelled = errors.New("stream: decoding cancelled")

// locomotive pulls frames and decodes them until the input closes or ctx is done.
func locomotive[T any](ctx context.Context, frames <-chan Frame, out chan<- decode.Result[T],
	d decode.Decoder[T], wg *sync.WaitGroup) {
	defer wg.Done()

	strict := IsStrict(ctx, false)
	logger := Logger(ctx)

	for {
		if ctx.Err() != nil {
			cancelRemaining(ctx, frames, out)
			return
		}

		select {
		case <-ctx.Done():
			cancelRemaining(ctx, frames, out)
			return
		case f, ok := <-frames:
			if !ok {
				return
			}

			r := decode.Run(d, f.Data, strict).WithID(f.ID)
			if !r.IsSuccess() {
				logger.Debug("frame decode failed",
					zap.Stringer("frame", f.ID),
					zap.Int("size", len(f.Data)),
					zap.Int("consumed", r.Consumed()),
					zap.Error(r.Err()))
			}

			select {
			case <-ctx.Done():
				cancelFrame(ctx, f, out)
				cancelRemaining(ctx, frames, out)
				return
			case out <- r:
			}
		}
	}
}

func cancelFrame[T any](ctx context.Context, f Frame, out chan<- decode.Result[T]) {
	if IsProcessRemainingEnabled(ctx, false) {
		out <- decode.Cancel[T](cancelCause(ctx)).WithID(f.ID)
	}
}

// cancelRemaining reports the frames already queued on frames. It does not
// wait for the producer to close the channel.
func cancelRemaining[T any](ctx context.Context, frames <-chan Frame, out chan<- decode.Result[T]) {
	if !IsProcessRemainingEnabled(ctx, false) {
		return
	}
	for {
		select {
		case f, ok := <-frames:
			if !ok {
				return
			}
			out <- decode.Cancel[T](cancelCause(ctx)).WithID(f.ID)
		default:
			return
		}
	}
}

func cancelCause(ctx context.Context) error {
	return errors.Join(ErrCancelled, context.Cause(ctx))
}
