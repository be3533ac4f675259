package wire

import "sync"

// ScratchBuffer is a pooled, growable byte slice used to stage an encoded
// Record before it is handed to a transport. Guidelines mirror the
// teacher's buffer pool: Put returns a buffer for reuse; callers that want
// its bytes to outlive the Put must copy them first.
type ScratchBuffer struct {
	b []byte
}

var scratchPool = sync.Pool{New: func() any { return &ScratchBuffer{b: make([]byte, 0, 256)} }}

// GetScratchBuffer obtains a pooled ScratchBuffer with length zero.
func GetScratchBuffer() *ScratchBuffer {
	sb := scratchPool.Get().(*ScratchBuffer)
	sb.b = sb.b[:0]
	return sb
}

// PutScratchBuffer returns sb to the pool.
func PutScratchBuffer(sb *ScratchBuffer) {
	sb.b = sb.b[:0]
	scratchPool.Put(sb)
}

// Grow ensures sb holds exactly n bytes, zeroed, reallocating only if its
// capacity is insufficient.
func (sb *ScratchBuffer) Grow(n int) []byte {
	if cap(sb.b) < n {
		sb.b = make([]byte, n)
		return sb.b
	}
	sb.b = sb.b[:n]
	for i := range sb.b {
		sb.b[i] = 0
	}
	return sb.b
}

// Bytes returns the buffer's current contents.
func (sb *ScratchBuffer) Bytes() []byte { return sb.b }

// Len returns the buffer's current length.
func (sb *ScratchBuffer) Len() int { return len(sb.b) }
