//go:build unix

package fio

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

var _ IOManager = (*MMapIO)(nil)

// MMapIO maps a data file read only, it speeds up replaying the data files
// when a disk is opened
type MMapIO struct {
	data []byte
}

func NewMMapIO(file string) (IOManager, error) {
	fd, err := os.OpenFile(file, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return &MMapIO{}, nil
	}

	data, err := unix.Mmap(int(fd.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &MMapIO{data: data}, nil
}

func (mio *MMapIO) Read(buf []byte, offset int64) (int, error) {
	if offset < 0 || offset > int64(len(mio.data)) {
		return 0, io.EOF
	}
	n := copy(buf, mio.data[offset:])
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

func (mio *MMapIO) Write([]byte) (int, error) {
	return 0, ErrReadOnly
}

func (mio *MMapIO) Sync() error {
	return nil
}

func (mio *MMapIO) Close() error {
	if mio.data == nil {
		return nil
	}
	err := unix.Munmap(mio.data)
	mio.data = nil
	return err
}

func (mio *MMapIO) Size() (int64, error) {
	return int64(len(mio.data)), nil
}
