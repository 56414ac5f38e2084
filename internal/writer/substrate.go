// Package writer provides the I/O substrate that the segy root package
// addresses traces and headers through: a sequential os.File-backed
// implementation and a memory-mapped implementation, plus the end-of-file
// allocator Create uses to lay out a new file.
package writer

// Substrate is the capability the segy root package needs from an opened
// file, independent of whether the file is addressed through buffered
// reads/writes or through a memory-mapped region. Selection between the
// two concrete implementations happens once, at Open/Create time, never
// via a build tag.
type Substrate interface {
	// ReadAt copies len(buf) bytes starting at offset into buf.
	ReadAt(buf []byte, offset int64) (int, error)

	// WriteAt writes buf starting at offset.
	WriteAt(buf []byte, offset int64) (int, error)

	// Flush commits pending writes. sync=true blocks until durable.
	// sync=false is a no-op for the mmap substrate (no msync is issued
	// or scheduled) and still a blocking Sync for the sequential one.
	Flush(sync bool) error

	// Size reports the current extent addressable through ReadAt/WriteAt.
	Size() (int64, error)

	// Close releases the substrate's resources. Idempotent.
	Close() error
}
