package dns

import "sync"

// Buffer size classes chosen to match common DNS message sizes: a
// plain query, a compressed response with a handful of records, and
// the EDNS(0) UDP maximum.
const (
	SmallBufferSize  = 512
	MediumBufferSize = 4096
	LargeBufferSize  = 65536
)

var (
	smallPool = sync.Pool{New: func() any { b := make([]byte, 0, SmallBufferSize); return &b }}
	medPool   = sync.Pool{New: func() any { b := make([]byte, 0, MediumBufferSize); return &b }}
	largePool = sync.Pool{New: func() any { b := make([]byte, 0, LargeBufferSize); return &b }}
)

// GetBuffer returns a zero-length []byte with at least the requested
// capacity, drawn from a size-classed pool rather than a fresh
// allocation, for callers that parse or build many packets in a hot
// loop (e.g. an mDNS responder's receive path).
func GetBuffer(sizeHint int) *[]byte {
	if sizeHint > LargeBufferSize {
		b := make([]byte, 0, sizeHint)
		return &b
	}
	var p *sync.Pool
	switch {
	case sizeHint <= SmallBufferSize:
		p = &smallPool
	case sizeHint <= MediumBufferSize:
		p = &medPool
	default:
		p = &largePool
	}
	buf := p.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// PutBuffer returns buf to the pool matching its capacity. Callers
// must not use buf after calling PutBuffer.
func PutBuffer(buf *[]byte) {
	switch {
	case cap(*buf) <= SmallBufferSize:
		smallPool.Put(buf)
	case cap(*buf) <= MediumBufferSize:
		medPool.Put(buf)
	case cap(*buf) <= LargeBufferSize:
		largePool.Put(buf)
	}
}
