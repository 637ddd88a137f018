package decode

import "encoding/binary"

// IntDecoder reads a fixed width integer in a given byte order.
type IntDecoder[T uint16 | uint32 | uint64 | int16 | int32 | int64] struct {
	width int
	read  func([]byte) T
}

func (d IntDecoder[T]) Width() int {
	return d.width
}

func (d IntDecoder[T]) Decode(c *Cursor) (T, error) {
	b, err := c.Take(d.width)
	if err != nil {
		return 0, err
	}
	return d.read(b), nil
}

func U16(order binary.ByteOrder) IntDecoder[uint16] {
	return IntDecoder[uint16]{width: 2, read: order.Uint16}
}

func U32(order binary.ByteOrder) IntDecoder[uint32] {
	return IntDecoder[uint32]{width: 4, read: order.Uint32}
}

func U64(order binary.ByteOrder) IntDecoder[uint64] {
	return IntDecoder[uint64]{width: 8, read: order.Uint64}
}

func I16(order binary.ByteOrder) IntDecoder[int16] {
	return IntDecoder[int16]{width: 2, read: func(b []byte) int16 { return int16(order.Uint16(b)) }}
}

func I32(order binary.ByteOrder) IntDecoder[int32] {
	return IntDecoder[int32]{width: 4, read: func(b []byte) int32 { return int32(order.Uint32(b)) }}
}

func I64(order binary.ByteOrder) IntDecoder[int64] {
	return IntDecoder[int64]{width: 8, read: func(b []byte) int64 { return int64(order.Uint64(b)) }}
}

func U16BE() IntDecoder[uint16] { return U16(binary.BigEndian) }
func U16LE() IntDecoder[uint16] { return U16(binary.LittleEndian) }
func U32BE() IntDecoder[uint32] { return U32(binary.BigEndian) }
func U32LE() IntDecoder[uint32] { return U32(binary.LittleEndian) }
func U64BE() IntDecoder[uint64] { return U64(binary.BigEndian) }
func U64LE() IntDecoder[uint64] { return U64(binary.LittleEndian) }
func I16BE() IntDecoder[int16] { return I16(binary.BigEndian) }
func I16LE() IntDecoder[int16] { return I16(binary.LittleEndian) }
func I32BE() IntDecoder[int32] { return I32(binary.BigEndian) }
func I32LE() IntDecoder[int32] { return I32(binary.LittleEndian) }
func I64BE() IntDecoder[int64] { return I64(binary.BigEndian) }
func I64LE() IntDecoder[int64] { return I64(binary.LittleEndian) }
