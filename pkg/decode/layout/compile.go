package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ib-77/bitrail/pkg/decode"
	"github.com/ib-77/bitrail/pkg/decode/combinators"
)

// Field is one decoded value of a record.
type Field struct {
	Name  string
	Value any
}

// Record holds decoded fields in layout order.
type Record []Field

func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// FieldError names the layout field that failed to decode.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

type recordDecoder struct {
	names  []string
	fields combinators.SequenceDecoder[any]
}

// Compile builds a decoder for l. Decoding stops at the first failing field.
func Compile(l Layout) (decode.Decoder[Record], error) {
	if l.DefaultOrder == "" {
		l.DefaultOrder = DefaultOrder
	}
	if err := Validate(l); err != nil {
		return nil, err
	}

	names := make([]string, len(l.Fields))
	ds := make([]decode.Decoder[any], len(l.Fields))
	for i, f := range l.Fields {
		d, err := fieldDecoder(f, l.DefaultOrder)
		if err != nil {
			return nil, err
		}
		names[i], ds[i] = f.Name, d
	}
	return recordDecoder{names: names, fields: combinators.Sequence(ds...)}, nil
}

func (r recordDecoder) Decode(c *decode.Cursor) (Record, error) {
	values, err := r.fields.Decode(c)
	if err != nil {
		var se *combinators.StepError
		if errors.As(err, &se) {
			return nil, &FieldError{Field: r.names[se.Index], Err: se.Err}
		}
		return nil, err
	}
	rec := make(Record, len(values))
	for i, v := range values {
		rec[i] = Field{Name: r.names[i], Value: v}
	}
	return rec, nil
}

func boxed[T any](d decode.Decoder[T]) decode.Decoder[any] {
	return combinators.Then(d, func(v T) any { return v })
}

func fieldDecoder(f FieldSpec, defaultOrder string) (decode.Decoder[any], error) {
	orderName := f.Order
	if orderName == "" {
		orderName = defaultOrder
	}
	order, err := byteOrder(orderName)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}

	switch strings.ToLower(f.Type) {
	case "u8":
		return boxed[uint8](decode.U8()), nil
	case "i8":
		return boxed(decode.I8()), nil
	case "bool":
		return boxed(decode.Bool()), nil
	case "u16":
		return boxed[uint16](decode.U16(order)), nil
	case "u32":
		return boxed[uint32](decode.U32(order)), nil
	case "u64":
		return boxed[uint64](decode.U64(order)), nil
	case "i16":
		return boxed[int16](decode.I16(order)), nil
	case "i32":
		return boxed[int32](decode.I32(order)), nil
	case "i64":
		return boxed[int64](decode.I64(order)), nil
	case "uvarint":
		return boxed(decode.Uvarint()), nil
	case "varint":
		return boxed(decode.Varint()), nil
	case "array":
		if f.Len <= 0 {
			return nil, fmt.Errorf("%w: field %q: array needs len > 0", ErrInvalidLayout, f.Name)
		}
		return boxed[[]byte](decode.ByteArray(f.Len)), nil
	case "bytes":
		return bytesField(f, order)
	}
	return nil, fmt.Errorf("%w: field %q: unknown type %q", ErrInvalidLayout, f.Name, f.Type)
}
