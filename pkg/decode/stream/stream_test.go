package stream

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/bitrail/pkg/decode"
	"github.com/ib-77/bitrail/pkg/decode/combinators"
)

func pairDecoder() decode.Decoder[combinators.Pair[uint8, uint16]] {
	return combinators.Chain[uint8, uint16](decode.U8(), decode.U16BE())
}

func TestDecodeAll_KeepsInputOrder(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data := make([][]byte, 50)
	for i := range data {
		data[i] = []byte{byte(i), 0, byte(i)}
	}
	data[7] = []byte{7}

	results := DecodeAll(ctx, pairDecoder(), 5, data...)
	require.Len(t, results, len(data))

	for i, r := range results {
		if i == 7 {
			assert.True(t, r.IsFailure())
			assert.ErrorIs(t, r.Err(), decode.ErrInsufficient)
			assert.Equal(t, 1, r.Consumed())
			continue
		}
		require.True(t, r.IsSuccess(), "frame %d: %v", i, r.Err())
		assert.Equal(t, uint8(i), r.Result().First)
		assert.Equal(t, uint16(i), r.Result().Second)
		assert.Equal(t, 3, r.Consumed())
	}
}

func TestRun_StrictRejectsTrailing(t *testing.T) {
	t.Parallel()
	ctx := WithStrictOptions(context.Background(), true)

	results := Collect(Run[uint8](ctx, ToFrames(ctx, []byte{1}, []byte{1, 2}), decode.U8(), 2))
	require.Len(t, results, 2)

	failed := 0
	for _, r := range results {
		if r.IsFailure() {
			failed++
			assert.ErrorIs(t, r.Err(), decode.ErrTrailing)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestRun_SharedDecoderIsUsedByAllLines(t *testing.T) {
	t.Parallel()
	ctx := WithWorkerOptions(context.Background(), 3)
	var calls atomic.Int32

	d := decode.Func[uint8](func(c *decode.Cursor) (uint8, error) {
		calls.Add(1)
		return decode.U8().Decode(c)
	})

	frames := make([][]byte, 20)
	for i := range frames {
		frames[i] = []byte{byte(i)}
	}
	results := Collect(Run[uint8](ctx, ToFrames(ctx, frames...), d, 0))
	assert.Len(t, results, 20)
	assert.Equal(t, int32(20), calls.Load())
}

func TestRun_CancelReportsRemaining(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	ctx = WithProcessOptions(ctx, true)
	cancel()

	in := make(chan Frame, 3)
	for i := 0; i < 3; i++ {
		in <- NewFrame([]byte{1})
	}
	close(in)

	var results []decode.Result[uint8]
	for r := range Run[uint8](ctx, in, decode.U8(), 1) {
		results = append(results, r)
	}

	require.Len(t, results, 3)
	cancelled := 0
	for _, r := range results {
		if r.IsCancel() {
			cancelled++
			assert.True(t, errors.Is(r.Err(), ErrCancelled))
			assert.True(t, decode.IsCancellationError(r.Err()))
		}
	}
	assert.Equal(t, 3, cancelled)
}

func TestRun_CancelReleasesWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = WithProcessOptions(ctx, true)
	cancel()

	// input stays open: workers must not wait for it to close
	in := make(chan Frame, 5)
	for i := 0; i < 5; i++ {
		in <- NewFrame([]byte{1})
	}

	before := runtime.NumGoroutine()
	results := Collect(Run[uint8](ctx, in, decode.U8(), 2))

	require.Len(t, results, 5)
	for _, r := range results {
		assert.True(t, r.IsCancel())
	}
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, time.Second, 10*time.Millisecond)
}

func TestRun_LogsFailures(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	results := Collect(Run[uint16](ctx, ToFrames(ctx, []byte{1}), decode.U16BE(), 1))
	require.Len(t, results, 1)
	assert.Equal(t, 1, logs.FilterMessage("frame decode failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("stream started").Len())
}

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.Equal(t, 7, GetWorkerMaxCount(ctx, 7))
	assert.False(t, IsProcessRemainingEnabled(ctx, false))
	assert.False(t, IsStrict(ctx, false))
	assert.NotNil(t, Logger(ctx))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 7))
}
