package combinators

import (
	"go.uber.org/zap"

	"github.com/ib-77/bitrail/pkg/decode"
)

// TracedDecoder logs every run of the wrapped decoder at debug level.
type TracedDecoder[T any] struct {
	name   string
	d      decode.Decoder[T]
	logger *zap.Logger
}

// Traced wraps d with debug logging. A nil logger disables logging.
func Traced[T any](name string, d decode.Decoder[T], logger *zap.Logger) TracedDecoder[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return TracedDecoder[T]{name: name, d: d, logger: logger}
}

func (t TracedDecoder[T]) Decode(c *decode.Cursor) (T, error) {
	start := c.Offset()
	v, err := t.d.Decode(c)

	fields := []zap.Field{
		zap.String("decoder", t.name),
		zap.Int("offset", start),
		zap.Int("consumed", c.Offset()-start),
		zap.Int("remaining", c.Remaining()),
	}
	if err != nil {
		t.logger.Debug("decode failed", append(fields, zap.Error(err))...)
		return v, err
	}
	t.logger.Debug("decoded", fields...)
	return v, nil
}
