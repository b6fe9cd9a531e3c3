package drive

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubDrive struct {
	id string
}

func (s *stubDrive) Initialize(context.Context) error { return nil }
func (s *stubDrive) Print(context.Context, io.Writer) error { return nil }
func (s *stubDrive) ID() string { return s.id }

func TestRegister(t *testing.T) {
	a := &stubDrive{id: "TST001"}
	b := &stubDrive{id: "TST000"}
	t.Cleanup(func() {
		Unregister(a.ID())
		Unregister(b.ID())
	})

	assert.Nil(t, Register(a))
	assert.Nil(t, Register(b))

	err := Register(&stubDrive{id: "TST001"})
	assert.True(t, errors.Is(err, ErrDuplicateDrive))

	d, ok := Lookup("TST001")
	assert.True(t, ok)
	assert.Same(t, a, d)

	ids := IDs()
	assert.Contains(t, ids, "TST000")
	assert.Contains(t, ids, "TST001")
	assert.IsIncreasing(t, ids)

	Unregister("TST001")
	_, ok = Lookup("TST001")
	assert.False(t, ok)
	assert.Nil(t, Register(a))
}

func TestRegister_EmptyID(t *testing.T) {
	assert.Equal(t, ErrEmptyID, Register(&stubDrive{}))
	assert.Panics(t, func() {
		MustRegister(&stubDrive{})
	})
}
