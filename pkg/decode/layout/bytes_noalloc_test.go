//go:build bitrail_noalloc

package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile_BytesNeedAllocation(t *testing.T) {
	t.Parallel()
	_, err := Compile(Layout{Fields: []FieldSpec{{Name: "b", Type: "bytes", Len: 3}}})
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = Load(filepath.Join("testdata", "packet.toml"))
	assert.ErrorIs(t, err, ErrInvalidLayout)
}
