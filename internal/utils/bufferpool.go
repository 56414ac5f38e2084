package utils

import "sync"

// bufferPool recycles scratch buffers for header and sample-buffer I/O.
// Sized around 3200 bytes (one textual header) since that is the largest
// buffer most codec operations need; trace/line bodies allocate their own.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 3200)
	},
}

// GetBuffer returns a byte slice of the requested length from the pool.
func GetBuffer(size int) []byte {
	buf := bufferPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size, size*2) // Increase capacity.
	}
	return buf[:size]
}

// ReleaseBuffer returns a buffer to the pool.
func ReleaseBuffer(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	bufferPool.Put(buf[:0])
}
