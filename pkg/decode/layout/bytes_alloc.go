//go:build !bitrail_noalloc

package layout

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ib-77/bitrail/pkg/decode"
	"github.com/ib-77/bitrail/pkg/decode/compressed"
)

func bytesField(f FieldSpec, order binary.ByteOrder) (decode.Decoder[any], error) {
	var d decode.Decoder[[]byte]
	switch strings.ToLower(f.LenType) {
	case "":
		if f.Len <= 0 {
			return nil, fmt.Errorf("%w: field %q: bytes needs len or len_type", ErrInvalidLayout, f.Name)
		}
		d = decode.ByteVec(f.Len)
	case "u8":
		d = decode.LengthPrefixed[uint8](decode.U8(), f.MaxLen)
	case "u16":
		d = decode.LengthPrefixed[uint16](decode.U16(order), f.MaxLen)
	case "u32":
		d = decode.LengthPrefixed[uint32](decode.U32(order), f.MaxLen)
	case "u64":
		d = decode.LengthPrefixed[uint64](decode.U64(order), f.MaxLen)
	case "uvarint":
		d = decode.LengthPrefixed[uint64](decode.Uvarint(), f.MaxLen)
	default:
		return nil, fmt.Errorf("%w: field %q: unknown len_type %q", ErrInvalidLayout, f.Name, f.LenType)
	}

	alg, err := compressed.ParseAlgorithm(f.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidLayout, f.Name, err)
	}
	if alg != compressed.None {
		d = compressed.Decompress(d, alg)
	}
	return boxed(d), nil
}
