//go:build bitrail_noalloc

package layout

import (
	"encoding/binary"
	"fmt"

	"github.com/ib-77/bitrail/pkg/decode"
)

func bytesField(f FieldSpec, _ binary.ByteOrder) (decode.Decoder[any], error) {
	return nil, fmt.Errorf("%w: field %q: bytes needs the allocation capability", ErrInvalidLayout, f.Name)
}
