// Package encoding provides the variable-length integer reader used by astdict string tables.
//
// A varint stores an unsigned integer in 7-bit groups, least-significant group
// first. Bit 7 of every byte is a continuation flag:
//
//	value 1      -> 0x01
//	value 127    -> 0x7f
//	value 128    -> 0x80 0x01
//	value 300    -> 0xac 0x02
//
// Zero is the single byte 0x00. Values use a 64-bit accumulator, so a varint is
// at most MaxVarintLen (10) bytes long.
//
// The reader takes an io.ByteReader so it can be driven from a stream without
// reading past the varint. Strings in a table are not read through this package;
// they are consumed byte by byte by the strtab package.
package encoding
