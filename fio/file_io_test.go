package fio

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFileIO(t *testing.T) *FileIO {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "data"))
	assert.Nil(t, err)
	assert.NotNil(t, fio)
	t.Cleanup(func() {
		_ = fio.Close()
	})
	return fio
}

func TestFileIO_Write(t *testing.T) {
	fio := newTestFileIO(t)

	n, err := fio.Write([]byte("hello"))
	assert.Nil(t, err)
	assert.Equal(t, 5, n)

	n, err = fio.Write([]byte(" sector"))
	assert.Nil(t, err)
	assert.Equal(t, 7, n)

	size, err := fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(12), size)
}

func TestFileIO_Read(t *testing.T) {
	fio := newTestFileIO(t)

	n, err := fio.Write([]byte("hello"))
	assert.Nil(t, err)
	assert.Equal(t, 5, n)

	buf := make([]byte, 5)
	n, err = fio.Read(buf, 0)
	assert.Nil(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf))

	buf = make([]byte, 3)
	n, err = fio.Read(buf, 2)
	assert.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "llo", string(buf))
}

func TestFileIO_Sync(t *testing.T) {
	fio := newTestFileIO(t)

	_, err := fio.Write([]byte("hello"))
	assert.Nil(t, err)
	assert.Nil(t, fio.Sync())
}

func TestFileIO_Reopen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "data")
	fio, err := NewFileIO(name)
	assert.Nil(t, err)
	_, err = fio.Write([]byte("hello"))
	assert.Nil(t, err)
	assert.Nil(t, fio.Close())

	fio, err = NewFileIO(name)
	assert.Nil(t, err)
	defer fio.Close()

	size, err := fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(5), size)
}

func TestFileIO_ReadPastEnd(t *testing.T) {
	fio := newTestFileIO(t)

	_, err := fio.Write([]byte("hello"))
	assert.Nil(t, err)

	buf := make([]byte, 8)
	n, err := fio.Read(buf, 0)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 5, n)

	n, err = fio.Read(buf, 5)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 0, n)
}
