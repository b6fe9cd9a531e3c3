package emudisk

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidflowers/mla-fileio/model"
)

func TestDisk_Merge_Volatile(t *testing.T) {
	ctx, disk := newVolatileDisk(t)
	assert.Nil(t, disk.SectorWrite(ctx, 0, sector(1), true))

	assert.Equal(t, ErrVolatileDisk, <-disk.Merge(ctx))
}

func TestDisk_Merge_Empty(t *testing.T) {
	ctx, disk := newPersistentDisk(t, t.TempDir())
	defer disk.Close()

	assert.Nil(t, <-disk.Merge(ctx))
}

func TestDisk_Merge(t *testing.T) {
	dir := t.TempDir()
	ctx, disk := newPersistentDisk(t, dir, WithDataFileSize(1100))

	for i := 0; i < 10; i++ {
		assert.Nil(t, disk.SectorWrite(ctx, uint32(i), sector(byte(i)), true))
	}
	for i := 0; i < 5; i++ {
		assert.Nil(t, disk.SectorWrite(ctx, uint32(i), sector(0xAA), true))
	}
	assert.Nil(t, disk.Trim(ctx, 5))
	assert.Nil(t, disk.Trim(ctx, 6))

	before, err := disk.Stat()
	require.NoError(t, err)

	assert.Nil(t, <-disk.Merge(ctx))
	assert.FileExists(t, model.GetDataFileName(disk.getMergeDirPath(), model.HintFileType, 0))
	assert.FileExists(t, model.GetDataFileName(disk.getMergeDirPath(), model.MergeFinishedFileType, 0))

	// the disk keeps serving until it is reopened
	assert.Nil(t, disk.SectorWrite(ctx, 9, sector(0x99), true))
	assert.Nil(t, disk.Close())

	disk, err = Open(ctx, dir, WithDataFileSize(1100))
	require.NoError(t, err)
	defer disk.Close()

	_, err = os.Stat(disk.getMergeDirPath())
	assert.True(t, os.IsNotExist(err))

	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 7, 8, 9}, disk.Sectors())

	buf := make([]byte, testSectorSize)
	for i := 0; i < 5; i++ {
		assert.Nil(t, disk.SectorRead(ctx, uint32(i), buf))
		assert.Equal(t, sector(0xAA), buf)
	}
	for _, lba := range []uint32{5, 6} {
		assert.Nil(t, disk.SectorRead(ctx, lba, buf))
		assert.Equal(t, sector(0), buf)
	}
	for _, lba := range []uint32{7, 8} {
		assert.Nil(t, disk.SectorRead(ctx, lba, buf))
		assert.Equal(t, sector(byte(lba)), buf)
	}
	assert.Nil(t, disk.SectorRead(ctx, 9, buf))
	assert.Equal(t, sector(0x99), buf)

	after, err := disk.Stat()
	require.NoError(t, err)
	assert.Less(t, after.DiskSize, before.DiskSize)
	assert.Less(t, after.DataFiles, before.DataFiles)
	assert.Less(t, after.ReclaimableSize, before.ReclaimableSize)
}

func TestDisk_Merge_Unfinished(t *testing.T) {
	dir := t.TempDir()
	ctx, disk := newPersistentDisk(t, dir)
	assert.Nil(t, disk.SectorWrite(ctx, 1, sector(1), true))

	mergeDir := disk.getMergeDirPath()
	assert.Nil(t, disk.Close())

	// a merge directory without the finished file is dropped
	require.NoError(t, os.MkdirAll(mergeDir, os.ModePerm))
	require.NoError(t, os.WriteFile(model.GetDataFileName(mergeDir, model.DataFileType, 0), []byte("junk"), 0644))

	disk, err := Open(ctx, dir)
	require.NoError(t, err)
	defer disk.Close()

	_, err = os.Stat(mergeDir)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, []uint32{1}, disk.Sectors())
}
