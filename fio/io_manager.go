package fio

import "github.com/pkg/errors"

var ErrReadOnly = errors.New("fio: io manager is read only")

// IOManager can be custom in options
type IOManager interface {
	Read([]byte, int64) (int, error)
	Write([]byte) (int, error)
	Sync() error
	Close() error
	Size() (int64, error)
}

// IOManagerCreator opens the IOManager of the named file
type IOManagerCreator func(name string) (IOManager, error)
