package stream

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/bitrail/pkg/decode"
)

// DefaultLines is the worker count used when neither the caller nor the
// context sets one.
const DefaultLines = 4

// Run decodes every frame with d on the given number of worker lines. A lines
// value below one falls back to the context's worker option or DefaultLines.
// The output is closed once all frames are handled or ctx is done; result
// order follows completion, use Result.Id to match frames. The output must be
// drained until closed, with Collect or a range loop, or workers block.
func Run[T any](ctx context.Context, frames <-chan Frame,
	d decode.Decoder[T], lines int) <-chan decode.Result[T] {

	if lines < 1 {
		lines = GetWorkerMaxCount(ctx, DefaultLines)
	}

	out := make(chan decode.Result[T])
	wg := &sync.WaitGroup{}

	Logger(ctx).Debug("stream started", zap.Int("lines", lines))

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go locomotive(ctx, frames, out, d, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// DecodeAll decodes data frames and returns results in input order. Frames
// not decoded before ctx is done come back as cancelled results.
func DecodeAll[T any](ctx context.Context, d decode.Decoder[T], lines int, data ...[]byte) []decode.Result[T] {
	ctx = WithProcessOptions(ctx, false)
	frames := make([]Frame, len(data))
	index := make(map[uuid.UUID]int, len(data))
	for i, b := range data {
		frames[i] = NewFrame(b)
		index[frames[i].ID] = i
	}

	in := make(chan Frame)
	go func() {
		defer close(in)
		for _, f := range frames {
			select {
			case in <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	ordered := make([]decode.Result[T], len(data))
	done := make([]bool, len(data))
	for _, r := range Collect(Run(ctx, in, d, lines)) {
		i := index[r.Id()]
		ordered[i], done[i] = r, true
	}
	for i := range ordered {
		if !done[i] {
			ordered[i] = decode.Cancel[T](cancelCause(ctx)).WithID(frames[i].ID)
		}
	}
	return ordered
}
