package drv059

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidflowers/mla-fileio/drive"
	"github.com/davidflowers/mla-fileio/emudisk"
)

func newDrive(t *testing.T, opts ...emudisk.Option) *Drive {
	d := New(opts...)
	require.NoError(t, d.Initialize(dlog.NewTestContext(t, false)))
	t.Cleanup(func() {
		_ = d.Close()
	})
	return d
}

func TestDrive_Registered(t *testing.T) {
	d, ok := drive.Lookup(ID)
	assert.True(t, ok)
	assert.Equal(t, ID, d.ID())
	_, ok = d.(drive.SectorDevice)
	assert.True(t, ok)
}

func TestDrive_Initialize(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	d := newDrive(t)

	fixture := Fixture()
	assert.Len(t, fixture, 9)

	buf := make([]byte, SectorSize)
	for lba, data := range fixture {
		assert.Nil(t, d.ReadSector(ctx, buf, lba, 1))
		assert.Equal(t, data, buf, "lba %d", lba)
	}

	for _, lba := range []uint32{1, 63, 66, 72, 97, 4084, 4086, 8073, 8076, 2049983} {
		assert.Nil(t, d.ReadSector(ctx, buf, lba, 1))
		assert.Equal(t, make([]byte, SectorSize), buf, "lba %d", lba)
	}

	assert.Equal(t, []uint32{0, 64, 65, 70, 71, 96, 4085, 8074, 8075}, d.Disk().Sectors())
}

func TestDrive_Reinitialize(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	d := newDrive(t)

	buf := bytes.Repeat([]byte{0xE5}, SectorSize)
	assert.Nil(t, d.WriteSector(ctx, buf, 8074, 1))
	assert.Nil(t, d.WriteSector(ctx, buf, 9000, 1))

	assert.Nil(t, d.Initialize(ctx))
	assert.Nil(t, d.ReadSector(ctx, buf, 8074, 1))
	assert.Equal(t, Fixture()[8074], buf)
	assert.False(t, d.Disk().IsAllocated(9000))
}

func TestFixture_Layout(t *testing.T) {
	fixture := Fixture()

	for _, lba := range []uint32{0, 64, 65, 70, 71} {
		assert.Equal(t, []byte{0x55, 0xAA}, fixture[lba][510:], "lba %d", lba)
	}

	// the partition entry points at the boot sector
	mbr := fixture[0]
	assert.Equal(t, byte(0x0C), mbr[446+4])
	assert.Equal(t, uint32(64), binary.LittleEndian.Uint32(mbr[446+8:]))
	assert.Equal(t, uint32(2049984), binary.LittleEndian.Uint32(mbr[446+12:]))

	boot := fixture[64]
	assert.Equal(t, "SYSLINUX", string(boot[3:11]))
	assert.Equal(t, uint16(SectorSize), binary.LittleEndian.Uint16(boot[11:]))
	assert.Equal(t, byte(4), boot[13])
	reserved := binary.LittleEndian.Uint16(boot[14:])
	assert.Equal(t, uint16(32), reserved)
	assert.Equal(t, byte(2), boot[16])
	fatSize := binary.LittleEndian.Uint32(boot[36:])
	assert.Equal(t, uint32(3989), fatSize)
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(boot[44:]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(boot[48:]))
	assert.Equal(t, uint16(6), binary.LittleEndian.Uint16(boot[50:]))
	assert.Equal(t, "NO NAME    ", string(boot[71:82]))
	assert.Equal(t, "FAT32   ", string(boot[82:90]))

	// FATs and the root directory sit where the boot sector says
	fat1 := uint32(64) + uint32(reserved)
	assert.Contains(t, fixture, fat1)
	assert.Contains(t, fixture, fat1+fatSize)
	assert.Equal(t, fixture[fat1], fixture[fat1+fatSize])
	assert.Equal(t, uint32(0x0FFFFFF8), binary.LittleEndian.Uint32(fixture[fat1]))
	assert.Contains(t, fixture, fat1+2*fatSize)

	assert.Equal(t, "RRaA", string(fixture[65][:4]))
	assert.Equal(t, "rrAa", string(fixture[65][484:488]))
	assert.Equal(t, "RRaA", string(fixture[71][:4]))
	assert.Equal(t, "MSWIN4.1", string(fixture[70][3:11]))

	root := fixture[8074]
	assert.Equal(t, "LDLINUX SYS", string(root[:11]))
	assert.Equal(t, "DRV059     ", string(root[32:43]))
	assert.Equal(t, byte(0x08), root[43])
	assert.True(t, bytes.Contains(fixture[8075], []byte("READ    TXT")))
}

func TestFixture_Copy(t *testing.T) {
	f := Fixture()
	f[0][0] = 0xFF
	assert.NotEqual(t, byte(0xFF), Fixture()[0][0])
}

func TestDrive_MultiSector(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	d := newDrive(t)

	buf := make([]byte, 3*SectorSize)
	for i := range buf {
		buf[i] = byte(i / SectorSize)
	}
	assert.Nil(t, d.WriteSector(ctx, buf, 5000, 3))

	out := make([]byte, 3*SectorSize)
	assert.Nil(t, d.ReadSector(ctx, out, 5000, 3))
	assert.Equal(t, buf, out)

	// reads straddling allocated and unallocated sectors
	out = make([]byte, 2*SectorSize)
	assert.Nil(t, d.ReadSector(ctx, out, 8075, 2))
	assert.Equal(t, Fixture()[8075], out[:SectorSize])
	assert.Equal(t, make([]byte, SectorSize), out[SectorSize:])

	// count 0 is a no-op
	assert.Nil(t, d.WriteSector(ctx, nil, 1, 0))
	assert.Nil(t, d.ReadSector(ctx, nil, 1, 0))
	assert.False(t, d.Disk().IsAllocated(1))
}

func TestDrive_Errors(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	d := New()
	buf := make([]byte, SectorSize)
	assert.Equal(t, ErrNotInitialized, d.ReadSector(ctx, buf, 0, 1))
	assert.Equal(t, ErrNotInitialized, d.WriteSector(ctx, buf, 0, 1))
	assert.Equal(t, ErrNotInitialized, d.Print(ctx, &bytes.Buffer{}))
	assert.Nil(t, d.Close())

	d = newDrive(t, emudisk.WithSectorCount(8076))
	assert.True(t, errors.Is(d.ReadSector(ctx, buf, 0, 2), ErrShortBuffer))
	assert.True(t, errors.Is(d.WriteSector(ctx, buf, 0, -1), ErrShortBuffer))
	assert.True(t, errors.Is(d.WriteSector(ctx, buf, ^uint32(0), 2), ErrShortBuffer))
	assert.True(t, errors.Is(d.ReadSector(ctx, make([]byte, 2*SectorSize), ^uint32(0), 2), emudisk.ErrLBAOutOfRange))
	assert.True(t, errors.Is(d.ReadSector(ctx, buf, 8076, 1), emudisk.ErrLBAOutOfRange))

	// a failed multi-sector write leaves nothing behind
	two := bytes.Repeat([]byte{0x11}, 2*SectorSize)
	assert.True(t, errors.Is(d.WriteSector(ctx, two, 8075, 2), emudisk.ErrLBAOutOfRange))
	assert.Nil(t, d.ReadSector(ctx, buf, 8075, 1))
	assert.Equal(t, Fixture()[8075], buf)
}

func TestDrive_Persistent(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	dir := t.TempDir()

	d := New(emudisk.WithDirPath(dir))
	require.NoError(t, d.Initialize(ctx))
	id := d.Disk().ID()
	assert.Nil(t, d.Close())

	disk, err := emudisk.Open(ctx, dir)
	require.NoError(t, err)
	defer disk.Close()

	assert.Equal(t, id, disk.ID())
	buf := make([]byte, SectorSize)
	for lba, data := range Fixture() {
		assert.Nil(t, disk.SectorRead(ctx, lba, buf))
		assert.Equal(t, data, buf, "lba %d", lba)
	}
}

func TestDrive_Print(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	d := newDrive(t)

	var out bytes.Buffer
	assert.Nil(t, d.Print(ctx, &out))
	assert.Contains(t, out.String(), "9 sectors allocated (4,608 bytes)")
	assert.Contains(t, out.String(), "sector 8075:")
	assert.Contains(t, out.String(), "SYSLINUX")
	assert.Contains(t, out.String(), "MSWIN4.1")
}
