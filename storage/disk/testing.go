package disk

import (
	"os"
	"path/filepath"
)

// SourceManagerTest is a SourceManagerImpl over a temporary directory
type SourceManagerTest struct {
	dir string
	SourceManager
}

// NewSourceManagerTest returns a SourceManager instance for testing purposes
func NewSourceManagerTest() *SourceManagerTest {
	dir, err := os.MkdirTemp("", "queryrunner")
	if err != nil {
		panic(err)
	}
	return &SourceManagerTest{dir, NewSourceManagerImpl(dir)}
}

// WriteSource stores data as a file named name inside the test directory.
func (d *SourceManagerTest) WriteSource(name string, data []byte) {
	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0666); err != nil {
		panic(err)
	}
}

// ShutDown removes the test directory
func (d *SourceManagerTest) ShutDown() {
	os.RemoveAll(d.dir)
}
