package emudisk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidflowers/mla-fileio/model"
)

func TestWriteBatch_Commit(t *testing.T) {
	ctx, disk := newVolatileDisk(t)

	wb := disk.NewWriteBatch()
	for i := 0; i < 4; i++ {
		assert.Nil(t, wb.Write(uint32(64+i), sector(byte(i))))
	}
	assert.Equal(t, 4, wb.Len())

	// not visible before the commit
	assert.False(t, disk.IsAllocated(64))

	assert.Nil(t, wb.Commit(ctx))
	assert.Equal(t, 0, wb.Len())

	buf := make([]byte, testSectorSize)
	for i := 0; i < 4; i++ {
		assert.Nil(t, disk.SectorRead(ctx, uint32(64+i), buf))
		assert.Equal(t, sector(byte(i)), buf)
	}

	// empty commit
	assert.Nil(t, wb.Commit(ctx))
}

func TestWriteBatch_Overwrite(t *testing.T) {
	ctx, disk := newVolatileDisk(t)

	wb := disk.NewWriteBatch()
	data := sector(1)
	assert.Nil(t, wb.Write(0, data))
	data[0] = 0xFF
	assert.Nil(t, wb.Write(0, sector(2)))
	assert.Equal(t, 1, wb.Len())
	assert.Nil(t, wb.Commit(ctx))

	buf := make([]byte, testSectorSize)
	assert.Nil(t, disk.SectorRead(ctx, 0, buf))
	assert.Equal(t, sector(2), buf)
}

func TestWriteBatch_Trim(t *testing.T) {
	ctx, disk := newVolatileDisk(t, WithCacheSize(8))
	assert.Nil(t, disk.SectorWrite(ctx, 96, sector(0xF8), true))

	wb := disk.NewWriteBatch()
	assert.Nil(t, wb.Trim(96))
	assert.Nil(t, wb.Write(97, sector(0x0F)))
	// drops the pending write of an unallocated sector
	assert.Nil(t, wb.Trim(97))
	assert.Equal(t, 1, wb.Len())

	assert.True(t, disk.IsAllocated(96))
	assert.Nil(t, wb.Commit(ctx))
	assert.False(t, disk.IsAllocated(96))
	assert.False(t, disk.IsAllocated(97))

	buf := make([]byte, testSectorSize)
	assert.Nil(t, disk.SectorRead(ctx, 96, buf))
	assert.Equal(t, sector(0), buf)
}

func TestWriteBatch_Invalid(t *testing.T) {
	ctx, disk := newVolatileDisk(t, WithSectorCount(10))

	wb := disk.NewWriteBatch(WithMaxBatchNum(2))
	assert.True(t, errors.Is(wb.Write(0, sector(0)[:100]), ErrSectorSize))
	assert.True(t, errors.Is(wb.Write(10, sector(0)), ErrLBAOutOfRange))
	assert.True(t, errors.Is(wb.Trim(10), ErrLBAOutOfRange))

	assert.Nil(t, wb.Write(0, sector(0)))
	assert.Nil(t, wb.Write(1, sector(1)))
	assert.Equal(t, ErrExceedMaxBatchNum, wb.Write(2, sector(2)))
	// replacing a pending sector does not grow the batch
	assert.Nil(t, wb.Write(1, sector(3)))

	assert.Nil(t, disk.Close())
	assert.Equal(t, ErrDiskClosed, wb.Commit(ctx))
}

func TestWriteBatch_Restart(t *testing.T) {
	dir := t.TempDir()
	ctx, disk := newPersistentDisk(t, dir)

	wb := disk.NewWriteBatch(WithBatchSync(false))
	assert.Nil(t, wb.Write(8074, sector(0x4C)))
	assert.Nil(t, wb.Write(8075, sector(0x52)))
	assert.Nil(t, wb.Commit(ctx))
	seq := disk.txSeq
	assert.Nil(t, disk.Close())

	disk, err := Open(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []uint32{8074, 8075}, disk.Sectors())
	assert.Equal(t, seq, disk.txSeq)

	buf := make([]byte, testSectorSize)
	assert.Nil(t, disk.SectorRead(ctx, 8075, buf))
	assert.Equal(t, sector(0x52), buf)
	assert.Nil(t, disk.Close())
}

func TestWriteBatch_Unfinished(t *testing.T) {
	dir := t.TempDir()
	ctx, disk := newPersistentDisk(t, dir)

	// a batch that crashed before its finish record
	disk.mu.Lock()
	for _, lba := range []uint32{0, 1} {
		_, err := disk.appendRecord(&model.Record{
			Type: model.NormalRecord,
			Seq:  99,
			LBA:  lba,
			Data: sector(0xAA),
		})
		require.NoError(t, err)
	}
	disk.mu.Unlock()
	assert.Nil(t, disk.SectorWrite(ctx, 2, sector(0xBB), true))
	assert.Nil(t, disk.Close())

	disk, err := Open(ctx, dir)
	require.NoError(t, err)
	defer disk.Close()

	assert.Equal(t, []uint32{2}, disk.Sectors())
	assert.Equal(t, uint64(99), disk.txSeq)

	stat, err := disk.Stat()
	assert.Nil(t, err)
	assert.Equal(t, 2*int64(stat.DiskSize/3), stat.ReclaimableSize)

	// new batches get a fresh sequence number
	wb := disk.NewWriteBatch()
	assert.Nil(t, wb.Write(0, sector(0xCC)))
	assert.Nil(t, wb.Commit(ctx))
	assert.Equal(t, uint64(100), disk.txSeq)
}
