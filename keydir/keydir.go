package keydir

import "github.com/davidflowers/mla-fileio/model"

// Keydir maps the LBA of every allocated sector to its latest record,
// you can use some other data structure once you implement this interface
type Keydir interface {
	// Put return the position it replaced, nil if the sector was not allocated
	Put(lba uint32, pos *model.RecordPos) *model.RecordPos
	Get(lba uint32) *model.RecordPos
	// Delete return the removed position
	Delete(lba uint32) (*model.RecordPos, bool)
	Size() int
	Iterator(reverse bool) Iterator
	Close() error
}

// Iterator walks a snapshot of the keydir in LBA order
type Iterator interface {
	Rewind()
	// Seek moves to the first LBA >= lba, or <= lba when reversed
	Seek(lba uint32)
	Next()
	Valid() bool
	Key() uint32
	Value() *model.RecordPos
	Close()
}
