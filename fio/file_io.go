package fio

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

var _ IOManager = (*FileIO)(nil)

const dataFilePerm = 0644

// FileIO backs a data file of a persistent disk with an os.File opened for
// appending. Errors carry the file name.
type FileIO struct {
	name string
	fd   *os.File
}

func NewFileIO(name string) (*FileIO, error) {
	fd, err := os.OpenFile(name, os.O_APPEND|os.O_RDWR|os.O_CREATE, dataFilePerm)
	if err != nil {
		return nil, err
	}
	return &FileIO{name: name, fd: fd}, nil
}

// Read reads at offset, a read past the end returns io.EOF unwrapped
func (f *FileIO) Read(buf []byte, offset int64) (int, error) {
	n, err := f.fd.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return n, errors.Wrapf(err, "read %s at %d", f.name, offset)
	}
	return n, err
}

func (f *FileIO) Write(data []byte) (int, error) {
	n, err := f.fd.Write(data)
	if err != nil {
		return n, errors.Wrapf(err, "append to %s", f.name)
	}
	return n, nil
}

func (f *FileIO) Sync() error {
	return errors.Wrapf(f.fd.Sync(), "sync %s", f.name)
}

func (f *FileIO) Close() error {
	return f.fd.Close()
}

func (f *FileIO) Size() (int64, error) {
	info, err := f.fd.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "stat %s", f.name)
	}
	return info.Size(), nil
}
