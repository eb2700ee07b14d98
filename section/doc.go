// Package section defines the byte-level layout constants of an astdict string table
// and the signature check that precedes it.
//
// # Layout
//
// A string table section is a single forward-only byte stream:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Signature (7 bytes, optional)                           │
//	│  - ASCII "astdict"                                      │
//	│  - Present only when the caller asks for the check      │
//	├─────────────────────────────────────────────────────────┤
//	│ Count (varint, 1-10 bytes)                              │
//	│  - 7 data bits per byte, least-significant group first  │
//	│  - Bit 7 set means another byte follows                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Strings (Count entries, variable)                       │
//	│  - Raw bytes terminated by 0x00                         │
//	│  - 0x01 takes the following byte literally              │
//	└─────────────────────────────────────────────────────────┘
//
// There are no length prefixes and no fixed-width integers, so the section is
// independent of byte order.
//
// # Escaping
//
// Inside a string body:
//
//	Byte   | Meaning
//	-------|-------------------------------------------------
//	0x00   | Terminator, not part of the string
//	0x01   | Escape, the next byte is appended as-is
//	other  | Appended as-is
//
// So a literal 0x00 is written as 0x01 0x00 and a literal 0x01 as 0x01 0x01.
package section
