// Package emudisk emulates a block device addressed in fixed-size sectors.
//
// Sectors are stored bitcask style: every write appends a record to the
// active data file and an in-memory keydir maps each allocated LBA to its
// latest record. A disk opened without a directory keeps its data files in
// memory, a disk with a directory survives Close and can be compacted with
// Merge.
package emudisk

import (
	"context"
	"encoding/binary"
	"io"
	"os"
	"sync"

	"github.com/datawire/dlib/dlog"
	"github.com/pkg/errors"

	"github.com/davidflowers/mla-fileio/cache"
	"github.com/davidflowers/mla-fileio/fio"
	"github.com/davidflowers/mla-fileio/keydir"
	"github.com/davidflowers/mla-fileio/model"
	"github.com/davidflowers/mla-fileio/utils"
)

type Disk struct {
	mu *sync.RWMutex

	fileLock   fio.FileLocker
	meta       *meta
	sectorSize int

	activeFile *model.DataFile            // data will append to active data file
	olderFiles map[uint32]*model.DataFile // older files, read only

	txSeq       uint64
	isMerging   bool
	reclaimable int64 // bytes held by superseded records

	cache  *cache.LRUCache[uint32, []byte]
	closed bool

	options *options
}

// Create initializes an emulated disk of sectorSize-byte sectors.
func Create(ctx context.Context, sectorSize int, opts ...Option) (*Disk, error) {
	if !utils.IsPowerOfTwo(sectorSize) || sectorSize < MinSectorSize || sectorSize > MaxSectorSize {
		return nil, errors.Wrapf(ErrInvalidSectorSize, "%d", sectorSize)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.dataFileSize < int64(model.MaxHeaderSize+sectorSize) {
		return nil, ErrDataFileSize
	}
	if options.keydir == nil {
		options.keydir = keydir.NewBTree(0)
	}
	if options.ioManagerCreator == nil {
		if options.dirPath == "" {
			options.ioManagerCreator = fio.MemIOCreator()
		} else {
			options.ioManagerCreator = defaultIOManagerCreator
		}
	}

	disk := &Disk{
		mu:         new(sync.RWMutex),
		sectorSize: sectorSize,
		olderFiles: make(map[uint32]*model.DataFile),
		cache:      cache.NewLRUCache[uint32, []byte](options.cacheSize),
		options:    options,
	}

	if options.dirPath == "" {
		disk.meta = newMeta(sectorSize)
		dlog.Debugf(ctx, "emudisk: created volatile disk %s (sector size %d)", disk.meta.ID, sectorSize)
		return disk, nil
	}

	if err := disk.openDir(ctx); err != nil {
		disk.releaseDir()
		return nil, err
	}
	dlog.Debugf(ctx, "emudisk: opened disk %s in %q (sector size %d, %d sectors allocated)",
		disk.meta.ID, options.dirPath, sectorSize, options.keydir.Size())
	return disk, nil
}

// Open reopens the persistent disk in dir with the sector size it was
// created with.
func Open(ctx context.Context, dir string, opts ...Option) (*Disk, error) {
	m, err := readMeta(dir)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.Wrapf(ErrNoDisk, "%q", dir)
	}
	return Create(ctx, m.SectorSize, append(opts, WithDirPath(dir))...)
}

func (d *Disk) openDir(ctx context.Context) error {
	dir := d.options.dirPath
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	d.fileLock = fio.NewFlock(dir)
	locked, err := d.fileLock.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		d.fileLock = nil
		return errors.Wrapf(ErrDirIsUsing, "%q", dir)
	}

	m, err := readMeta(dir)
	if err != nil {
		return err
	}
	switch {
	case m == nil:
		m = newMeta(d.sectorSize)
		if err = writeMeta(dir, m); err != nil {
			return err
		}
	case m.SectorSize != d.sectorSize:
		return errors.Wrapf(ErrSectorSizeMismatch, "disk has %d, want %d", m.SectorSize, d.sectorSize)
	}
	d.meta = m

	if err = d.loadMergeFiles(ctx); err != nil {
		return err
	}
	fids, err := d.loadDataFiles()
	if err != nil {
		return err
	}
	if err = d.loadKeydirFromHintFile(); err != nil {
		return err
	}
	if err = d.loadKeydirFromDataFiles(fids); err != nil {
		return err
	}
	if d.options.mmapLoad {
		return d.resetIOManagers(fids)
	}
	return nil
}

func (d *Disk) releaseDir() {
	for _, df := range d.olderFiles {
		_ = df.Close()
	}
	if d.activeFile != nil {
		_ = d.activeFile.Close()
	}
	if d.fileLock != nil {
		_ = d.fileLock.Unlock()
	}
}

// ID returns the identifier of the disk, persisted with the disk.
func (d *Disk) ID() string {
	return d.meta.ID
}

func (d *Disk) SectorSize() int {
	return d.sectorSize
}

// SectorWrite writes one sector at lba. When allocate is false the sector
// must already hold data, otherwise ErrSectorNotAllocated is returned and
// nothing is written.
func (d *Disk) SectorWrite(ctx context.Context, lba uint32, data []byte, allocate bool) error {
	if err := d.checkSector(lba, len(data)); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDiskClosed
	}

	if !allocate && d.options.keydir.Get(lba) == nil {
		return errors.Wrapf(ErrSectorNotAllocated, "lba %d", lba)
	}

	pos, err := d.appendRecord(&model.Record{
		Type: model.NormalRecord,
		LBA:  lba,
		Data: data,
	})
	if err != nil {
		return errors.Wrapf(err, "write sector %d", lba)
	}
	d.applyRecord(model.NormalRecord, lba, pos)
	d.cachePut(lba, data)

	dlog.Tracef(ctx, "emudisk: wrote sector %d at fid=%d offset=%d", lba, pos.Fid, pos.Offset)
	return nil
}

// SectorRead reads one sector at lba into buf. Sectors that were never
// written read as the fill byte.
func (d *Disk) SectorRead(ctx context.Context, lba uint32, buf []byte) error {
	if err := d.checkSector(lba, len(buf)); err != nil {
		return err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDiskClosed
	}

	if d.cache != nil {
		if data, ok := d.cache.Get(lba); ok {
			copy(buf, data)
			return nil
		}
	}

	pos := d.options.keydir.Get(lba)
	if pos == nil {
		for i := range buf {
			buf[i] = d.options.fillByte
		}
		dlog.Tracef(ctx, "emudisk: read unallocated sector %d", lba)
		return nil
	}

	data, err := d.readSectorData(lba, pos)
	if err != nil {
		return errors.Wrapf(err, "read sector %d", lba)
	}
	copy(buf, data)
	d.cachePut(lba, data)
	return nil
}

// Trim releases the sector at lba, it reads as the fill byte afterwards.
func (d *Disk) Trim(ctx context.Context, lba uint32) error {
	if err := d.checkSector(lba, d.sectorSize); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDiskClosed
	}

	if d.options.keydir.Get(lba) == nil {
		return nil
	}

	pos, err := d.appendRecord(&model.Record{
		Type: model.TrimRecord,
		LBA:  lba,
	})
	if err != nil {
		return errors.Wrapf(err, "trim sector %d", lba)
	}
	d.applyRecord(model.TrimRecord, lba, pos)
	if d.cache != nil {
		d.cache.Remove(lba)
	}

	dlog.Tracef(ctx, "emudisk: trimmed sector %d", lba)
	return nil
}

// IsAllocated reports whether lba holds data, always false once the disk
// is closed
func (d *Disk) IsAllocated(lba uint32) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}
	return d.options.keydir.Get(lba) != nil
}

// Sectors return the allocated LBAs in ascending order, nil once the disk is
// closed
func (d *Disk) Sectors() []uint32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return nil
	}

	iterator := d.options.keydir.Iterator(false)
	defer iterator.Close()

	lbas := make([]uint32, 0, d.options.keydir.Size())
	for iterator.Rewind(); iterator.Valid(); iterator.Next() {
		lbas = append(lbas, iterator.Key())
	}
	return lbas
}

// Fold calls fn for every allocated sector in LBA order and stops at the
// first error. fn must not call back into the disk.
func (d *Disk) Fold(ctx context.Context, fn func(lba uint32, data []byte) error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDiskClosed
	}

	iterator := d.options.keydir.Iterator(false)
	defer iterator.Close()

	for iterator.Rewind(); iterator.Valid(); iterator.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := d.readSectorData(iterator.Key(), iterator.Value())
		if err != nil {
			return errors.Wrapf(err, "read sector %d", iterator.Key())
		}
		if err = fn(iterator.Key(), data); err != nil {
			return err
		}
	}
	return nil
}

type Stat struct {
	ID              string `json:"id"`
	Dir             string `json:"dir,omitempty"`
	SectorSize      int    `json:"sector_size"`
	Sectors         int    `json:"sectors"`
	DataFiles       int    `json:"data_files"`
	DiskSize        int64  `json:"disk_size"`
	ReclaimableSize int64  `json:"reclaimable_size"`
}

func (d *Disk) Stat() (*Stat, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return nil, ErrDiskClosed
	}

	stat := &Stat{
		ID:              d.meta.ID,
		Dir:             d.options.dirPath,
		SectorSize:      d.sectorSize,
		Sectors:         d.options.keydir.Size(),
		DataFiles:       len(d.olderFiles),
		ReclaimableSize: d.reclaimable,
	}
	if d.activeFile != nil {
		stat.DataFiles++
		stat.DiskSize += d.activeFile.WriteOffset
	}
	for _, df := range d.olderFiles {
		size, err := df.Size()
		if err != nil {
			return nil, err
		}
		stat.DiskSize += size
	}
	return stat, nil
}

func (d *Disk) Sync() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDiskClosed
	}
	if d.activeFile == nil {
		return nil
	}
	return d.activeFile.Sync()
}

// Close syncs and closes the data files and releases the directory. The
// content of a volatile disk is gone after Close.
func (d *Disk) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true

	var firstErr error
	maybeSetErr := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if d.activeFile != nil {
		maybeSetErr(d.activeFile.Sync())
		maybeSetErr(d.activeFile.Close())
	}
	for _, df := range d.olderFiles {
		maybeSetErr(df.Close())
	}
	maybeSetErr(d.options.keydir.Close())
	if d.cache != nil {
		d.cache.Purge()
	}
	if d.fileLock != nil {
		maybeSetErr(d.fileLock.Unlock())
	}
	return firstErr
}

func (d *Disk) checkSector(lba uint32, size int) error {
	if size != d.sectorSize {
		return errors.Wrapf(ErrSectorSize, "got %d bytes, sector size is %d", size, d.sectorSize)
	}
	if d.options.sectorCount > 0 && uint64(lba) >= d.options.sectorCount {
		return errors.Wrapf(ErrLBAOutOfRange, "lba %d, sector count %d", lba, d.options.sectorCount)
	}
	return nil
}

func (d *Disk) cachePut(lba uint32, data []byte) {
	if d.cache == nil {
		return
	}
	d.cache.Add(lba, append([]byte(nil), data...))
}

// applyRecord updates the keydir, caller must hold the write lock
func (d *Disk) applyRecord(typ model.RecordType, lba uint32, pos *model.RecordPos) {
	switch typ {
	case model.NormalRecord:
		if old := d.options.keydir.Put(lba, pos); old != nil {
			d.reclaimable += int64(old.Size)
		}
	case model.TrimRecord:
		if old, ok := d.options.keydir.Delete(lba); ok {
			d.reclaimable += int64(old.Size)
		}
		d.reclaimable += int64(pos.Size)
	case model.TxFinishRecord:
		d.reclaimable += int64(pos.Size)
	}
}

func (d *Disk) dataFile(fid uint32) *model.DataFile {
	if d.activeFile != nil && d.activeFile.Fid == fid {
		return d.activeFile
	}
	return d.olderFiles[fid]
}

func (d *Disk) readSectorData(lba uint32, pos *model.RecordPos) ([]byte, error) {
	df := d.dataFile(pos.Fid)
	if df == nil {
		return nil, ErrNoDataFile
	}
	record, _, err := d.getRecordFromDataFile(df, pos.Offset)
	if err != nil {
		return nil, err
	}
	if record.Type != model.NormalRecord || record.LBA != lba || len(record.Data) != d.sectorSize {
		return nil, ErrDataFileCorrupted
	}
	return record.Data, nil
}

// appendRecord writes record to the active data file, caller must hold the
// write lock
func (d *Disk) appendRecord(record *model.Record) (*model.RecordPos, error) {
	// create data file if there is no active data file
	if d.activeFile == nil {
		if err := d.setActiveDatafile(); err != nil {
			return nil, err
		}
	}

	data, size, err := d.marshalRecord(record)
	if err != nil {
		return nil, err
	}

	// active file size + record size exceed the limit size
	// close current active file, create a new active size
	if d.activeFile.WriteOffset+size > d.options.dataFileSize {
		if err = d.activeFile.Sync(); err != nil {
			return nil, err
		}
		if err = d.setActiveDatafile(); err != nil {
			return nil, err
		}
	}

	offset := d.activeFile.WriteOffset
	if err = d.activeFile.Write(data); err != nil {
		return nil, err
	}
	if d.options.syncWrites {
		if err = d.activeFile.Sync(); err != nil {
			return nil, err
		}
	}

	return &model.RecordPos{
		Fid:    d.activeFile.Fid,
		Offset: offset,
		Size:   uint32(size),
	}, nil
}

func (d *Disk) setActiveDatafile() error {
	var fid uint32

	oldActiveFile := d.activeFile
	if oldActiveFile != nil {
		fid = oldActiveFile.Fid + 1
		// save old data file
		d.olderFiles[oldActiveFile.Fid] = oldActiveFile
	}

	ioManager, err := d.options.ioManagerCreator(model.GetDataFileName(d.options.dirPath, model.DataFileType, fid))
	if err != nil {
		return err
	}
	dataFile, err := model.OpenDataFile(fid, ioManager)
	if err != nil {
		_ = ioManager.Close()
		return err
	}

	d.activeFile = dataFile
	return nil
}

// marshalRecord return the encoded record and its size. The codec keeps the
// crc in the first 4 bytes of the header, it covers the rest of the header
// and the data.
func (d *Disk) marshalRecord(record *model.Record) ([]byte, int64, error) {
	header := &model.RecordHeader{
		Type:     record.Type,
		Seq:      record.Seq,
		LBA:      record.LBA,
		DataSize: int64(len(record.Data)),
	}
	headerData, headerSize, err := d.options.codec.MarshalRecordHeader(header)
	if err != nil {
		return nil, 0, err
	}

	size := headerSize + int64(len(record.Data))
	buf := make([]byte, size)
	copy(buf, headerData[:headerSize])
	copy(buf[headerSize:], record.Data)

	crc := utils.GenerateCrc(buf[4:headerSize], record.Data)
	binary.BigEndian.PutUint32(buf[:4], crc)

	return buf, size, nil
}

// getRecordFromDataFile return the record at offset and its encoded size,
// io.EOF at the end of the file
func (d *Disk) getRecordFromDataFile(df *model.DataFile, offset int64) (*model.Record, int64, error) {
	headerData, err := df.ReadRecordHeader(offset)
	if err != nil {
		return nil, 0, err
	}

	header := new(model.RecordHeader)
	headerSize, err := d.options.codec.UnmarshalRecordHeader(headerData, header)
	if err != nil {
		return nil, 0, errors.Wrapf(ErrDataFileCorrupted, "fid %d offset %d: %v", df.Fid, offset, err)
	}

	// no record carries more than a sector
	if header.DataSize > int64(d.sectorSize) {
		return nil, 0, errors.Wrapf(ErrDataFileCorrupted, "fid %d offset %d: data size %d", df.Fid, offset, header.DataSize)
	}
	data, err := df.ReadRecord(offset+headerSize, header.DataSize)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, 0, errors.Wrapf(ErrDataFileCorrupted, "fid %d offset %d: truncated record", df.Fid, offset)
		}
		return nil, 0, err
	}

	if !utils.CheckCrc(header.Crc, headerData[4:headerSize], data) {
		return nil, 0, errors.Wrapf(ErrDataFileCorrupted, "fid %d offset %d: crc mismatch", df.Fid, offset)
	}

	return &model.Record{
		Type: header.Type,
		Seq:  header.Seq,
		LBA:  header.LBA,
		Data: data,
	}, headerSize + header.DataSize, nil
}
