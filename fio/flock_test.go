package fio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFlock(t *testing.T) {
	dir := t.TempDir()

	lock := NewFlock(dir)
	ok, err := lock.TryLock()
	assert.Nil(t, err)
	assert.True(t, ok)

	other := NewFlock(dir)
	ok, err = other.TryLock()
	assert.Nil(t, err)
	assert.False(t, ok)

	assert.Nil(t, lock.Unlock())

	ok, err = other.TryLock()
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Nil(t, other.Unlock())
}
