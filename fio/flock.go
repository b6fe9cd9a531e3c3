package fio

import (
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLocker guards a disk directory against a second open, in this or
// another process
type FileLocker interface {
	TryLock() (bool, error)
	Unlock() error
}

var _ FileLocker = (*flock.Flock)(nil)

// LockFileName is the lock file inside a disk directory
const LockFileName = "LOCK"

func NewFlock(dirPath string) *flock.Flock {
	return flock.New(filepath.Join(dirPath, LockFileName))
}
