// Package layout compiles record layouts described in TOML into decoders.
//
// A layout lists fields in wire order:
//
//	name = "packet"
//	default_order = "big"
//
//	[[field]]
//	name = "version"
//	type = "u8"
//
//	[[field]]
//	name = "payload"
//	type = "bytes"
//	len_type = "u16"
//	compression = "zstd"
//
// Supported types: u8, i8, bool, u16, u32, u64, i16, i32, i64, uvarint,
// varint, array (fixed len) and bytes (length prefixed, optionally
// compressed). The bytes type needs the allocation capability.
package layout
