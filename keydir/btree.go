package keydir

import (
	"sort"
	"sync"

	"github.com/google/btree"

	"github.com/davidflowers/mla-fileio/model"
)

var _ Keydir = (*BTree)(nil)

const defaultDegree = 32

type entry struct {
	lba uint32
	pos *model.RecordPos
}

func lessEntry(a, b entry) bool {
	return a.lba < b.lba
}

// BTree is the default keydir, entries are ordered by LBA so the allocated
// sectors can be walked in disk order
type BTree struct {
	tree *btree.BTreeG[entry]
	lock *sync.RWMutex
}

func NewBTree(degree int) *BTree {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &BTree{
		tree: btree.NewG[entry](degree, lessEntry),
		lock: &sync.RWMutex{},
	}
}

func (bt *BTree) Put(lba uint32, pos *model.RecordPos) *model.RecordPos {
	bt.lock.Lock()
	old, replaced := bt.tree.ReplaceOrInsert(entry{lba: lba, pos: pos})
	bt.lock.Unlock()
	if !replaced {
		return nil
	}
	return old.pos
}

func (bt *BTree) Get(lba uint32) *model.RecordPos {
	bt.lock.RLock()
	e, ok := bt.tree.Get(entry{lba: lba})
	bt.lock.RUnlock()
	if !ok {
		return nil
	}
	return e.pos
}

func (bt *BTree) Delete(lba uint32) (*model.RecordPos, bool) {
	bt.lock.Lock()
	e, ok := bt.tree.Delete(entry{lba: lba})
	bt.lock.Unlock()
	if !ok {
		return nil, false
	}
	return e.pos, true
}

func (bt *BTree) Size() int {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	return bt.tree.Len()
}

func (bt *BTree) Close() error {
	bt.lock.Lock()
	bt.tree.Clear(false)
	bt.lock.Unlock()
	return nil
}

// Iterator snapshots the entries, later updates are not visible to it
func (bt *BTree) Iterator(reverse bool) Iterator {
	bt.lock.RLock()
	defer bt.lock.RUnlock()

	it := &btreeIterator{
		entries: make([]entry, 0, bt.tree.Len()),
		reverse: reverse,
	}
	collect := func(e entry) bool {
		it.entries = append(it.entries, e)
		return true
	}
	if reverse {
		bt.tree.Descend(collect)
	} else {
		bt.tree.Ascend(collect)
	}
	return it
}

type btreeIterator struct {
	entries []entry
	idx     int
	reverse bool
}

func (it *btreeIterator) Rewind() {
	it.idx = 0
}

func (it *btreeIterator) Seek(lba uint32) {
	it.idx = sort.Search(len(it.entries), func(i int) bool {
		if it.reverse {
			return it.entries[i].lba <= lba
		}
		return it.entries[i].lba >= lba
	})
}

func (it *btreeIterator) Next() {
	it.idx++
}

func (it *btreeIterator) Valid() bool {
	return it.idx < len(it.entries)
}

func (it *btreeIterator) Key() uint32 {
	return it.entries[it.idx].lba
}

func (it *btreeIterator) Value() *model.RecordPos {
	return it.entries[it.idx].pos
}

func (it *btreeIterator) Close() {
	it.entries = nil
}
