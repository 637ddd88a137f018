// Package compressed decodes compressed payloads read by another decoder.
//
// The decoder itself needs the allocation capability and is excluded by the
// bitrail_noalloc build tag; algorithm names are always available.
package compressed

import (
	"errors"
	"fmt"
	"strings"
)

type Algorithm int

const (
	None Algorithm = iota
	Gzip
	Snappy
	Zstd
	Brotli
	LZ4
)

// DefaultMaxSize bounds decompressed output unless WithMaxSize says otherwise.
const DefaultMaxSize = 64 << 20

var ErrTooLarge = errors.New("compressed: decompressed size exceeds limit")

var names = map[Algorithm]string{
	None:   "none",
	Gzip:   "gzip",
	Snappy: "snappy",
	Zstd:   "zstd",
	Brotli: "brotli",
	LZ4:    "lz4",
}

func (a Algorithm) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name such as "zstd" to its Algorithm. The empty string is None.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, nil
	}
	if s == "deflate" {
		return Gzip, nil
	}
	for a, n := range names {
		if n == s {
			return a, nil
		}
	}
	return None, fmt.Errorf("compressed: unknown algorithm %q", s)
}
