package common

import (
	"sync"

	"github.com/sasha-s/go-deadlock"
)

type ReaderWriterLatch interface {
	WLock()
	WUnlock()
	RLock()
	RUnlock()
}

type rwLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type readerWriterLatch struct {
	mutex rwLocker
}

// NewRWLatch returns a latch over sync.RWMutex, or over a deadlock detecting
// RWMutex when EnableDeadlockDetection is set.
func NewRWLatch() ReaderWriterLatch {
	if EnableDeadlockDetection {
		deadlock.Opts.DeadlockTimeout = DeadlockTimeout
		return &readerWriterLatch{new(deadlock.RWMutex)}
	}
	return &readerWriterLatch{new(sync.RWMutex)}
}

func (l *readerWriterLatch) WLock() {
	l.mutex.Lock()
}

func (l *readerWriterLatch) WUnlock() {
	l.mutex.Unlock()
}

func (l *readerWriterLatch) RLock() {
	l.mutex.RLock()
}

func (l *readerWriterLatch) RUnlock() {
	l.mutex.RUnlock()
}
