package section

const (
	// Signature is the magic marker that may precede a string table.
	Signature = "astdict"
	// SignatureSize is the length of Signature in bytes.
	SignatureSize = len(Signature)

	TerminatorByte = 0x00 // TerminatorByte ends a string body.
	EscapeByte     = 0x01 // EscapeByte makes the following byte literal.
)
