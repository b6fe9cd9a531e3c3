//go:build !unix

package fio

// NewMMapIO falls back to plain file reads where mmap is unavailable
func NewMMapIO(file string) (IOManager, error) {
	return NewFileIO(file)
}
