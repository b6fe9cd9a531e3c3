package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidflowers/mla-fileio/drive/drv059"
	"github.com/davidflowers/mla-fileio/emudisk"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	assert.Nil(t, err)
	assert.Empty(t, cfg.Options())

	filename := filepath.Join(t.TempDir(), "emudisk.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(`
dir: /var/lib/emudisk/drv059
data_file_size: 1048576
sector_count: 2050048
fill_byte: 0xe5
cache_size: 64
mmap_load: true
`), 0644))

	cfg, err = loadConfig(filename)
	assert.Nil(t, err)
	assert.Equal(t, &config{
		Dir:          "/var/lib/emudisk/drv059",
		DataFileSize: 1 << 20,
		SectorCount:  2050048,
		FillByte:     0xE5,
		CacheSize:    64,
		MMapLoad:     true,
	}, cfg)
	assert.Len(t, cfg.Options(), 5)

	require.NoError(t, os.WriteFile(filename, []byte("sector_size: 4096\n"), 0644))
	_, err = loadConfig(filename)
	assert.NotNil(t, err)

	require.NoError(t, os.WriteFile(filename, []byte("cache_size: -1\n"), 0644))
	_, err = loadConfig(filename)
	assert.NotNil(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLogLevelFlag(t *testing.T) {
	var lvl logLevelFlag
	for str, want := range map[string]logrus.Level{
		"error":   logrus.ErrorLevel,
		"WARNING": logrus.WarnLevel,
		"info":    logrus.InfoLevel,
		"debug":   logrus.DebugLevel,
		"trace":   logrus.TraceLevel,
	} {
		assert.Nil(t, lvl.Set(str))
		assert.Equal(t, want, lvl.Level)
	}
	assert.Equal(t, "trace", lvl.String())
	assert.NotNil(t, lvl.Set("loud"))
	assert.Equal(t, "loglevel", lvl.Type())
}

func TestParseRange(t *testing.T) {
	lba, count, err := parseRange([]string{"8074"})
	assert.Nil(t, err)
	assert.Equal(t, uint32(8074), lba)
	assert.Equal(t, 1, count)

	lba, count, err = parseRange([]string{"0x40", "8"})
	assert.Nil(t, err)
	assert.Equal(t, uint32(64), lba)
	assert.Equal(t, 8, count)

	_, _, err = parseRange([]string{"4294967295", "2"})
	assert.True(t, errors.Is(err, emudisk.ErrLBAOutOfRange))

	_, _, err = parseRange([]string{"-1"})
	assert.NotNil(t, err)
	_, _, err = parseRange([]string{"1", "many"})
	assert.NotNil(t, err)
}

func TestReadSectorsFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "boot.bin")
	require.NoError(t, os.WriteFile(filename, []byte("SYSLINUX"), 0644))

	data, err := readSectorsFile(filename, 512)
	assert.Nil(t, err)
	assert.Len(t, data, 512)
	assert.Equal(t, "SYSLINUX", string(data[:8]))
	assert.Equal(t, make([]byte, 504), data[8:])
}

func TestCopyDisk(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	d := drv059.New()
	require.NoError(t, d.Initialize(ctx))
	defer d.Close()

	dir := t.TempDir()
	dst, err := emudisk.Create(ctx, drv059.SectorSize, emudisk.WithDirPath(dir))
	require.NoError(t, err)
	assert.Nil(t, copyDisk(ctx, dst, d.Disk()))
	assert.Nil(t, dst.Close())

	dst, err = emudisk.Open(ctx, dir)
	require.NoError(t, err)
	defer dst.Close()

	buf := make([]byte, drv059.SectorSize)
	for lba, want := range drv059.Fixture() {
		assert.Nil(t, dst.SectorRead(ctx, lba, buf))
		assert.Equal(t, want, buf, "lba %d", lba)
	}

	other, err := emudisk.Create(ctx, 4096)
	require.NoError(t, err)
	defer other.Close()
	assert.True(t, errors.Is(copyDisk(ctx, other, d.Disk()), emudisk.ErrSectorSizeMismatch))
}

func TestWriteDrive(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	dir := t.TempDir()

	d := drv059.New()
	assert.Nil(t, writeDrive(ctx, &config{Dir: dir}, d))
	// the volatile source is released once copied
	assert.Nil(t, d.Disk())

	disk, err := emudisk.Open(ctx, dir)
	require.NoError(t, err)
	defer disk.Close()
	assert.Equal(t, []uint32{0, 64, 65, 70, 71, 96, 4085, 8074, 8075}, disk.Sectors())
}
