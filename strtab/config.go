package strtab

import (
	"fmt"

	"github.com/arloliu/astdict/format"
	"github.com/arloliu/astdict/internal/options"
)

// DefaultMaxPreallocation caps the slice capacity reserved from a decoded count.
// The count comes from untrusted input, so it is only a hint.
const DefaultMaxPreallocation = 4096

// ReaderConfig holds the settings of a Reader. It is populated through ReaderOption
// values and validated once all options are applied.
type ReaderConfig struct {
	checkSignature   bool
	compression      format.CompressionType
	maxPreallocation int
	maxStringLength  int
	lookupIndex      bool
}

// NewReaderConfig returns the default configuration: no signature check, no
// compression, DefaultMaxPreallocation, unlimited string length, lazy lookup index.
func NewReaderConfig() *ReaderConfig {
	return &ReaderConfig{
		compression:      format.CompressionNone,
		maxPreallocation: DefaultMaxPreallocation,
	}
}

// Validate checks the combined configuration.
func (c *ReaderConfig) Validate() error {
	if !c.compression.IsValid() {
		return fmt.Errorf("unknown compression type 0x%02x", uint8(c.compression))
	}

	return nil
}

func (c *ReaderConfig) setMaxPreallocation(n int) error {
	if n < 0 {
		return fmt.Errorf("max preallocation must be non-negative, got %d", n)
	}
	c.maxPreallocation = n

	return nil
}

func (c *ReaderConfig) setMaxStringLength(n int) error {
	if n < 0 {
		return fmt.Errorf("max string length must be non-negative, got %d", n)
	}
	c.maxStringLength = n

	return nil
}

// ReaderOption is a functional option for configuring a Reader.
type ReaderOption = options.Option[*ReaderConfig]

// WithSignatureCheck makes the reader consume and verify the 7-byte "astdict"
// signature before the count. Default is false.
func WithSignatureCheck(enabled bool) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.checkSignature = enabled
	})
}

// WithCompression declares that the section is compressed with comp. The reader
// then reads its source to EOF and decompresses it before decoding.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.compression = comp
	})
}

// WithMaxPreallocation caps the capacity reserved for the decoded count.
// Zero disables preallocation. Default is DefaultMaxPreallocation.
func WithMaxPreallocation(n int) ReaderOption {
	return options.New(func(c *ReaderConfig) error {
		return c.setMaxPreallocation(n)
	})
}

// WithMaxStringLength rejects strings longer than n decoded bytes with
// errs.ErrStringTooLong. Zero means unlimited, the default.
func WithMaxStringLength(n int) ReaderOption {
	return options.New(func(c *ReaderConfig) error {
		return c.setMaxStringLength(n)
	})
}

// WithLookupIndex builds the Table.IndexOf hash index right after a successful
// decode instead of on first use. Default is false.
func WithLookupIndex(enabled bool) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.lookupIndex = enabled
	})
}
