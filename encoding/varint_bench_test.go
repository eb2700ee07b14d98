package encoding

import (
	"bytes"
	"math"
	"testing"

	ienc "github.com/arloliu/astdict/internal/encoding"
)

func BenchmarkReadUvarint(b *testing.B) {
	cases := []struct {
		name  string
		value uint64
	}{
		{"1byte", 100},
		{"3bytes", 1 << 20},
		{"10bytes", math.MaxUint64},
	}

	for _, c := range cases {
		encoded := ienc.AppendUvarint(nil, c.value)
		r := bytes.NewReader(encoded)

		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(encoded)
				if _, _, err := ReadUvarint(r); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
