//go:build !bitrail_noalloc

package compressed

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"math"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"

	"github.com/ib-77/bitrail/pkg/decode"
	"github.com/ib-77/bitrail/pkg/decode/combinators"
)

type Option func(*options)

type options struct {
	maxSize int64
}

// WithMaxSize sets the largest accepted decompressed size in bytes.
func WithMaxSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// Decoder decompresses the bytes produced by an inner decoder.
type Decoder struct {
	inner combinators.TryDecoder[[]byte, []byte]
	alg   Algorithm
}

// Decompress returns a decoder that reads a payload with d and inflates it.
// A failure of d is reported as Left, a decompression failure as Right.
func Decompress(d decode.Decoder[[]byte], alg Algorithm, opts ...Option) Decoder {
	o := options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	return Decoder{
		alg: alg,
		inner: combinators.Try(d, func(b []byte) ([]byte, error) {
			return Inflate(b, alg, o.maxSize)
		}),
	}
}

func (d Decoder) Algorithm() Algorithm {
	return d.alg
}

func (d Decoder) Decode(c *decode.Cursor) ([]byte, error) {
	return d.inner.Decode(c)
}

// Inflate decompresses data, failing with ErrTooLarge past maxSize bytes.
// A maxSize of zero or less means DefaultMaxSize.
func Inflate(data []byte, alg Algorithm, maxSize int64) ([]byte, error) {
	r, closer, err := newReader(bytes.NewReader(data), alg)
	if err != nil {
		return nil, fmt.Errorf("compressed: %s: %w", alg, err)
	}
	if closer != nil {
		defer closer()
	}

	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	limited := r
	if maxSize < math.MaxInt64 {
		limited = io.LimitReader(r, maxSize+1)
	}

	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("compressed: %s: %w", alg, err)
	}
	if int64(len(out)) > maxSize {
		return nil, ErrTooLarge
	}
	return out, nil
}

func newReader(src io.Reader, alg Algorithm) (io.Reader, func(), error) {
	switch alg {
	case None:
		return src, nil, nil
	case Gzip:
		r, err := gzip.NewReader(src)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case Snappy:
		return snappy.NewReader(src), nil, nil
	case Zstd:
		r, err := zstd.NewReader(src)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	case Brotli:
		return brotli.NewReader(src), nil, nil
	case LZ4:
		return lz4.NewReader(src), nil, nil
	}
	return nil, nil, fmt.Errorf("unsupported algorithm %d", int(alg))
}

// Compress is the inverse of Inflate, for producing test vectors and fixtures.
func Compress(data []byte, alg Algorithm) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch alg {
	case None:
		return data, nil
	case Gzip:
		w = gzip.NewWriter(&b)
	case Snappy:
		w = snappy.NewBufferedWriter(&b)
	case Zstd:
		var err error
		w, err = zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
	case Brotli:
		w = brotli.NewWriterLevel(&b, brotli.BestCompression)
	case LZ4:
		w = lz4.NewWriter(&b)
	default:
		return nil, fmt.Errorf("compressed: unsupported algorithm %d", int(alg))
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
