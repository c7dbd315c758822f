package disk

import "io"

// SourceManager is responsible for opening tabular sources by name
type SourceManager interface {
	// OpenSource returns the decompressed content of the named source.
	OpenSource(name string) (io.ReadCloser, error)
	// GetNumReads returns how many times a source has been opened.
	GetNumReads() uint64
}
