package disk

import (
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/ryogrid/QueryRunner/common"
)

// SourceManagerImpl opens sources from the file system. Names are resolved
// relative to dataDir unless they are absolute.
type SourceManagerImpl struct {
	dataDir  string
	numReads uint64
}

func NewSourceManagerImpl(dataDir string) SourceManager {
	return &SourceManagerImpl{dataDir: dataDir}
}

func (d *SourceManagerImpl) resolvePath(name string) string {
	if d.dataDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.dataDir, name)
}

func (d *SourceManagerImpl) OpenSource(name string) (io.ReadCloser, error) {
	path := d.resolvePath(name)
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	atomic.AddUint64(&d.numReads, 1)
	common.ShPrintf(common.DEBUG_INFO, "OpenSource: %s\n", path)

	rc, err := wrapDecompressor(name, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return rc, nil
}

func (d *SourceManagerImpl) GetNumReads() uint64 {
	return atomic.LoadUint64(&d.numReads)
}
