package disk

import (
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionOf returns the compression a source name implies by its
// extension: "gzip", "zstd", "snappy", "lz4" or "" for plain text.
func CompressionOf(name string) string {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return "gzip"
	case strings.HasSuffix(name, ".zst"):
		return "zstd"
	case strings.HasSuffix(name, ".sz"):
		return "snappy"
	case strings.HasSuffix(name, ".lz4"):
		return "lz4"
	}
	return ""
}

type decompressReader struct {
	io.Reader
	closeFn func() error
	src     io.Closer
}

func (r *decompressReader) Close() error {
	var err error
	if r.closeFn != nil {
		err = r.closeFn()
	}
	if srcErr := r.src.Close(); err == nil {
		err = srcErr
	}
	return err
}

func wrapDecompressor(name string, src io.ReadCloser) (io.ReadCloser, error) {
	switch CompressionOf(name) {
	case "gzip":
		gr, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		return &decompressReader{gr, gr.Close, src}, nil
	case "zstd":
		zr, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		return &decompressReader{zr, func() error { zr.Close(); return nil }, src}, nil
	case "snappy":
		return &decompressReader{snappy.NewReader(src), nil, src}, nil
	case "lz4":
		return &decompressReader{lz4.NewReader(src), nil, src}, nil
	}
	return src, nil
}
