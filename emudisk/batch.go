package emudisk

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/datawire/dlib/dlog"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/davidflowers/mla-fileio/model"
)

// WriteBatch groups sector writes and trims that become visible together.
// A batch interrupted by a crash is discarded when the disk is reopened.
type WriteBatch struct {
	mu *sync.Mutex

	disk          *Disk
	options       *writeBatchOptions
	pendingWrites map[uint32]*model.Record
}

func (d *Disk) NewWriteBatch(options ...WriteBatchOption) *WriteBatch {
	opts := defaultWriteBatchOptions()
	for _, opt := range options {
		opt(opts)
	}

	return &WriteBatch{
		mu:            new(sync.Mutex),
		options:       opts,
		disk:          d,
		pendingWrites: make(map[uint32]*model.Record),
	}
}

// Write stores the sector temporarily, it always allocates on commit
func (wb *WriteBatch) Write(lba uint32, data []byte) error {
	if err := wb.disk.checkSector(lba, len(data)); err != nil {
		return err
	}

	wb.mu.Lock()
	defer wb.mu.Unlock()

	if err := wb.checkBatchNum(lba); err != nil {
		return err
	}

	wb.pendingWrites[lba] = &model.Record{
		Type: model.NormalRecord,
		LBA:  lba,
		Data: append([]byte(nil), data...),
	}
	return nil
}

func (wb *WriteBatch) Trim(lba uint32) error {
	if err := wb.disk.checkSector(lba, wb.disk.sectorSize); err != nil {
		return err
	}

	wb.mu.Lock()
	defer wb.mu.Unlock()

	// if the sector is not allocated, only drop the pending write
	if !wb.disk.IsAllocated(lba) {
		delete(wb.pendingWrites, lba)
		return nil
	}

	if err := wb.checkBatchNum(lba); err != nil {
		return err
	}

	wb.pendingWrites[lba] = &model.Record{
		Type: model.TrimRecord,
		LBA:  lba,
	}
	return nil
}

func (wb *WriteBatch) Len() int {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	return len(wb.pendingWrites)
}

func (wb *WriteBatch) checkBatchNum(lba uint32) error {
	if _, ok := wb.pendingWrites[lba]; ok {
		return nil
	}
	if len(wb.pendingWrites) >= wb.options.maxBatchNum {
		return ErrExceedMaxBatchNum
	}
	return nil
}

func (wb *WriteBatch) Commit(ctx context.Context) error {
	wb.mu.Lock()
	defer wb.mu.Unlock()

	if len(wb.pendingWrites) == 0 {
		return nil
	}

	d := wb.disk
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDiskClosed
	}

	seq := atomic.AddUint64(&d.txSeq, 1)

	lbas := maps.Keys(wb.pendingWrites)
	slices.Sort(lbas)

	// update keydir must after all the records are written to the file
	// store the position of the record temporarily
	positions := make(map[uint32]*model.RecordPos, len(lbas))
	for _, lba := range lbas {
		record := wb.pendingWrites[lba]
		pos, err := d.appendRecord(&model.Record{
			Type: record.Type,
			Seq:  seq,
			LBA:  lba,
			Data: record.Data,
		})
		if err != nil {
			return errors.Wrapf(err, "commit batch %d", seq)
		}
		positions[lba] = pos
	}

	// after all the records are written to the file
	// write a special record to the file to indicate the end of the transaction
	finishPos, err := d.appendRecord(&model.Record{
		Type: model.TxFinishRecord,
		Seq:  seq,
	})
	if err != nil {
		return errors.Wrapf(err, "commit batch %d", seq)
	}

	if wb.options.sync && d.activeFile != nil {
		if err = d.activeFile.Sync(); err != nil {
			return err
		}
	}

	for _, lba := range lbas {
		record := wb.pendingWrites[lba]
		d.applyRecord(record.Type, lba, positions[lba])
		switch {
		case d.cache == nil:
		case record.Type == model.TrimRecord:
			d.cache.Remove(lba)
		default:
			d.cachePut(lba, record.Data)
		}
	}
	d.applyRecord(model.TxFinishRecord, 0, finishPos)

	dlog.Tracef(ctx, "emudisk: committed batch %d with %d sectors", seq, len(lbas))
	wb.pendingWrites = make(map[uint32]*model.Record)
	return nil
}
