package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 64, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_WriteAndString(t *testing.T) {
	bb := NewByteBuffer(4)

	require.NoError(t, bb.WriteByte('a'))
	n, err := bb.Write([]byte{0x00, 'c'})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	s := bb.String()
	require.Equal(t, "a\x00c", s)
	require.Equal(t, []byte("a\x00c"), bb.Bytes())

	// String must be a copy that survives buffer reuse.
	bb.Reset()
	require.NoError(t, bb.WriteByte('z'))
	require.Equal(t, "a\x00c", s)
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBufferPool_GetReturnsEmptyBuffer(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("dirty"))
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(32, 0)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	big := NewByteBuffer(1024)
	p.Put(big)

	// The pool may hand back any buffer it kept, never the oversized one.
	for range 10 {
		bb := p.Get()
		require.LessOrEqual(t, bb.Cap(), 16)
	}
}

func TestStringBufferPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup

	for g := range 8 {
		wg.Add(1)
		go func(id byte) {
			defer wg.Done()
			for range 100 {
				bb := GetStringBuffer()
				assert.Equal(t, 0, bb.Len())
				_ = bb.WriteByte(id)
				PutStringBuffer(bb)
			}
		}(byte(g))
	}

	wg.Wait()
}
