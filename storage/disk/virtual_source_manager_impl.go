package disk

import (
	"io"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dsnet/golib/memfile"
)

// VirtualSourceManagerImpl keeps sources in memory. It is used by tests and
// by embedders which hand data to the engine without touching the disk.
type VirtualSourceManagerImpl struct {
	files    map[string]*memfile.File
	mutex    *sync.RWMutex
	numReads uint64
}

func NewVirtualSourceManagerImpl() *VirtualSourceManagerImpl {
	return &VirtualSourceManagerImpl{make(map[string]*memfile.File), new(sync.RWMutex), 0}
}

// AddSource registers data under name. Content registered after the source
// was loaded by a catalog is not seen by that catalog.
func (d *VirtualSourceManagerImpl) AddSource(name string, data []byte) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	d.files[name] = memfile.New(buf)
}

func (d *VirtualSourceManagerImpl) OpenSource(name string) (io.ReadCloser, error) {
	d.mutex.RLock()
	file, ok := d.files[name]
	d.mutex.RUnlock()
	if !ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	atomic.AddUint64(&d.numReads, 1)

	// every reader gets its own offset
	reader := io.NopCloser(io.NewSectionReader(file, 0, int64(len(file.Bytes()))))
	return wrapDecompressor(name, reader)
}

func (d *VirtualSourceManagerImpl) GetNumReads() uint64 {
	return atomic.LoadUint64(&d.numReads)
}
