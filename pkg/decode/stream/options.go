package stream

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
	StrictOptionKey  OptionKey = "strict_options"
	LoggerOptionKey  OptionKey = "logger_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type ProcessOptions struct {
	// ProcessRemaining makes workers report every frame still queued at
	// cancellation as a cancelled result.
	ProcessRemaining bool
}

type StrictOptions struct {
	// RejectTrailing fails frames that have bytes left after the value.
	RejectTrailing bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func WithStrictOptions(ctx context.Context, rejectTrailing bool) context.Context {
	return context.WithValue(ctx, StrictOptionKey, StrictOptions{RejectTrailing: rejectTrailing})
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

func IsStrict(ctx context.Context, defaultStrict bool) bool {
	options, ok := ctx.Value(StrictOptionKey).(StrictOptions)
	if ok {
		return options.RejectTrailing
	}
	return defaultStrict
}

// Logger returns the logger carried by ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(LoggerOptionKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}
