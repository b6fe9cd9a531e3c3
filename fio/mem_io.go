package fio

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

var _ IOManager = (*MemIO)(nil)

var ErrClosed = errors.New("fio: io manager is closed")

// MemIO keeps the file content in memory, it backs volatile disks
type MemIO struct {
	mu     sync.RWMutex
	data   []byte
	closed bool
}

func NewMemIO() *MemIO {
	return &MemIO{}
}

func (m *MemIO) Read(buf []byte, offset int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, ErrClosed
	}
	if offset < 0 || offset > int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(buf, m.data[offset:])
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

func (m *MemIO) Write(data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}
	m.data = append(m.data, data...)
	return len(data), nil
}

func (m *MemIO) Sync() error {
	return nil
}

func (m *MemIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MemIO) Size() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.data)), nil
}

// MemIOCreator returns an IOManagerCreator that hands out one MemIO per name,
// a name opened twice shares its content
func MemIOCreator() IOManagerCreator {
	var mu sync.Mutex
	files := make(map[string]*MemIO)
	return func(name string) (IOManager, error) {
		mu.Lock()
		defer mu.Unlock()
		if m, ok := files[name]; ok && !m.isClosed() {
			return m, nil
		}
		m := NewMemIO()
		files[name] = m
		return m, nil
	}
}

func (m *MemIO) isClosed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}
