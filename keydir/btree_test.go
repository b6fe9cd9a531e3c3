package keydir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidflowers/mla-fileio/model"
)

func TestBTree_Put(t *testing.T) {
	bt := NewBTree(32)

	old := bt.Put(0, &model.RecordPos{
		Fid:    1,
		Offset: 3,
		Size:   2,
	})
	assert.Nil(t, old)

	old = bt.Put(0, &model.RecordPos{
		Fid:    2,
		Offset: 3,
		Size:   2,
	})
	assert.NotNil(t, old)
	assert.Equal(t, uint32(1), old.Fid)
	assert.Equal(t, 1, bt.Size())
}

func TestBTree_Get(t *testing.T) {
	bt := NewBTree(0)

	assert.Nil(t, bt.Get(64))

	bt.Put(64, &model.RecordPos{
		Fid:    1,
		Offset: 3,
		Size:   2,
	})
	pos := bt.Get(64)
	assert.Equal(t, uint32(1), pos.Fid)
	assert.Equal(t, uint32(2), pos.Size)
	assert.Equal(t, int64(3), pos.Offset)

	bt.Put(64, &model.RecordPos{
		Fid:    2,
		Offset: 3,
		Size:   2,
	})
	pos = bt.Get(64)
	assert.Equal(t, uint32(2), pos.Fid)
	assert.Nil(t, bt.Get(65))
}

func TestBTree_Delete(t *testing.T) {
	bt := NewBTree(32)

	bt.Put(8074, &model.RecordPos{Fid: 1, Offset: 3, Size: 2})
	pos := bt.Get(8074)
	assert.NotNil(t, pos)

	old, ok := bt.Delete(8074)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), old.Fid)

	old, ok = bt.Delete(8074)
	assert.False(t, ok)
	assert.Nil(t, old)
	assert.Equal(t, 0, bt.Size())
}

func TestBTree_Iterator(t *testing.T) {
	bt := NewBTree(32)
	lbas := []uint32{8075, 0, 96, 64, 4085}
	for i, lba := range lbas {
		bt.Put(lba, &model.RecordPos{Fid: uint32(i)})
	}

	iter := bt.Iterator(false)
	var got []uint32
	for iter.Rewind(); iter.Valid(); iter.Next() {
		got = append(got, iter.Key())
	}
	iter.Close()
	assert.Equal(t, []uint32{0, 64, 96, 4085, 8075}, got)

	iter = bt.Iterator(true)
	got = got[:0]
	for iter.Rewind(); iter.Valid(); iter.Next() {
		got = append(got, iter.Key())
	}
	assert.Equal(t, []uint32{8075, 4085, 96, 64, 0}, got)
}

func TestBTree_IteratorSeek(t *testing.T) {
	bt := NewBTree(32)
	for _, lba := range []uint32{0, 64, 65, 70, 71, 96} {
		bt.Put(lba, &model.RecordPos{Offset: int64(lba)})
	}

	iter := bt.Iterator(false)
	iter.Seek(66)
	assert.True(t, iter.Valid())
	assert.Equal(t, uint32(70), iter.Key())
	assert.Equal(t, int64(70), iter.Value().Offset)

	iter.Seek(97)
	assert.False(t, iter.Valid())

	iter = bt.Iterator(true)
	iter.Seek(66)
	assert.True(t, iter.Valid())
	assert.Equal(t, uint32(65), iter.Key())
}

func TestBTree_Close(t *testing.T) {
	bt := NewBTree(32)
	for i := 0; i < 5; i++ {
		bt.Put(uint32(i), &model.RecordPos{Fid: uint32(i)})
	}
	assert.Equal(t, 5, bt.Size())
	assert.Nil(t, bt.Close())
	assert.Equal(t, 0, bt.Size())
}
