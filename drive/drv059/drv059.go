// Package drv059 is the DRV059 test drive: a FAT32 volume whose root
// directory holds long file names, served from an emulated disk.
package drv059

import (
	"context"
	"io"
	"math"
	"sync"

	"github.com/datawire/dlib/dlog"
	"github.com/pkg/errors"

	"github.com/davidflowers/mla-fileio/drive"
	"github.com/davidflowers/mla-fileio/emudisk"
	"github.com/davidflowers/mla-fileio/utils"
)

const (
	ID         = "DRV059"
	SectorSize = 512
)

var (
	ErrNotInitialized = errors.New("drv059 err: drive is not initialized")
	ErrShortBuffer    = errors.New("drv059 err: buffer is shorter than the sectors")
)

var _ drive.SectorDevice = (*Drive)(nil)

func init() {
	drive.MustRegister(New())
}

type Drive struct {
	mu   sync.Mutex
	opts []emudisk.Option
	disk *emudisk.Disk
}

// New returns an uninitialized drive, opts are passed to emudisk.Create.
func New(opts ...emudisk.Option) *Drive {
	return &Drive{opts: opts}
}

func (d *Drive) ID() string {
	return ID
}

// Initialize creates the backing disk and writes the fixture sectors. A
// disk held from an earlier Initialize is closed first.
func (d *Drive) Initialize(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disk != nil {
		if err := d.disk.Close(); err != nil {
			return err
		}
		d.disk = nil
	}

	disk, err := emudisk.Create(ctx, SectorSize, d.opts...)
	if err != nil {
		return errors.Wrapf(err, "initialize %s", ID)
	}
	for _, s := range fixture {
		if err = disk.SectorWrite(ctx, s.lba, s.data[:], true); err != nil {
			_ = disk.Close()
			return errors.Wrapf(err, "initialize %s", ID)
		}
	}
	d.disk = disk

	dlog.Debugf(ctx, "drv059: initialized disk %s with %d sectors", disk.ID(), len(fixture))
	return nil
}

// WriteSector writes count consecutive sectors from buf starting at lba.
// Sectors are allocated as needed. Either all of them are written or none.
func (d *Drive) WriteSector(ctx context.Context, buf []byte, lba uint32, count int) error {
	disk, err := d.checkTransfer(buf, lba, count)
	if err != nil || count == 0 {
		return err
	}

	if count == 1 {
		return disk.SectorWrite(ctx, lba, buf[:SectorSize], true)
	}

	wb := disk.NewWriteBatch(emudisk.WithMaxBatchNum(count))
	for i := 0; i < count; i++ {
		start, end := utils.SectorOffset(i, SectorSize)
		if err = wb.Write(lba+uint32(i), buf[start:end]); err != nil {
			return err
		}
	}
	return wb.Commit(ctx)
}

// ReadSector reads count consecutive sectors starting at lba into buf.
func (d *Drive) ReadSector(ctx context.Context, buf []byte, lba uint32, count int) error {
	disk, err := d.checkTransfer(buf, lba, count)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		start, end := utils.SectorOffset(i, SectorSize)
		if err = disk.SectorRead(ctx, lba+uint32(i), buf[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (d *Drive) checkTransfer(buf []byte, lba uint32, count int) (*emudisk.Disk, error) {
	disk := d.Disk()
	if disk == nil {
		return nil, ErrNotInitialized
	}
	if count < 0 || len(buf) < count*SectorSize {
		return nil, errors.Wrapf(ErrShortBuffer, "%d sectors, %d bytes", count, len(buf))
	}
	if count > 0 && uint64(lba)+uint64(count)-1 > math.MaxUint32 {
		return nil, errors.Wrapf(emudisk.ErrLBAOutOfRange, "lba %d, %d sectors", lba, count)
	}
	return disk, nil
}

func (d *Drive) Print(ctx context.Context, w io.Writer) error {
	disk := d.Disk()
	if disk == nil {
		return ErrNotInitialized
	}
	return disk.Print(ctx, w)
}

// Disk returns the backing disk, nil before Initialize.
func (d *Drive) Disk() *emudisk.Disk {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disk
}

func (d *Drive) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disk == nil {
		return nil
	}
	err := d.disk.Close()
	d.disk = nil
	return err
}

// Fixture returns a copy of the sectors Initialize writes, keyed by LBA.
func Fixture() map[uint32][]byte {
	sectors := make(map[uint32][]byte, len(fixture))
	for _, s := range fixture {
		sectors[s.lba] = append([]byte(nil), s.data[:]...)
	}
	return sectors
}
