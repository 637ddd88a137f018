package layout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalidLayout = errors.New("layout: invalid layout")

// DefaultOrder is the byte order used when a layout names none.
const DefaultOrder = "big"

// Layout describes a record as an ordered list of fields.
type Layout struct {
	Name         string      `toml:"name"`
	DefaultOrder string      `toml:"default_order"`
	Fields       []FieldSpec `toml:"field"`
}

// FieldSpec describes one field of a layout.
type FieldSpec struct {
	Name        string `toml:"name"`
	Type        string `toml:"type"`
	Order       string `toml:"order"`
	Len         int    `toml:"len"`
	LenType     string `toml:"len_type"`
	MaxLen      int    `toml:"max_len"`
	Compression string `toml:"compression"`
}

// Load reads and validates a layout file.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout load failed (%s): %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout parse failed (%s): %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a layout document. Unknown keys are rejected.
func Parse(data []byte) (Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return Layout{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Layout{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidLayout, strings.Join(keys, ", "))
	}
	if l.DefaultOrder == "" {
		l.DefaultOrder = DefaultOrder
	}
	if err := Validate(l); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks field names and types without building decoders.
// An empty DefaultOrder means DefaultOrder.
func Validate(l Layout) error {
	if len(l.Fields) == 0 {
		return fmt.Errorf("%w: no fields", ErrInvalidLayout)
	}
	if l.DefaultOrder == "" {
		l.DefaultOrder = DefaultOrder
	}
	if _, err := byteOrder(l.DefaultOrder); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(l.Fields))
	for i, f := range l.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidLayout, i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidLayout, f.Name)
		}
		seen[f.Name] = struct{}{}
		if _, err := fieldDecoder(f, l.DefaultOrder); err != nil {
			return err
		}
	}
	return nil
}

func byteOrder(name string) (binary.ByteOrder, error) {
	switch strings.ToLower(name) {
	case "big", "be":
		return binary.BigEndian, nil
	case "little", "le":
		return binary.LittleEndian, nil
	}
	return nil, fmt.Errorf("%w: unknown byte order %q", ErrInvalidLayout, name)
}
