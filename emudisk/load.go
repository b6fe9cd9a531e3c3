package emudisk

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/davidflowers/mla-fileio/fio"
	"github.com/davidflowers/mla-fileio/model"
)

// loadDataFiles opens the data files of the directory, the newest one
// becomes the active file
func (d *Disk) loadDataFiles() ([]uint32, error) {
	dirEntries, err := os.ReadDir(d.options.dirPath)
	if err != nil {
		return nil, err
	}

	var fids []uint32
	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, model.DataFileSuffix) {
			continue
		}
		fid, err := strconv.ParseUint(strings.TrimSuffix(name, model.DataFileSuffix), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrDataFileCorrupted, "unexpected data file %q", name)
		}
		fids = append(fids, uint32(fid))
	}
	slices.Sort(fids)

	creator := d.options.ioManagerCreator
	if d.options.mmapLoad {
		creator = fio.NewMMapIO
	}

	for i, fid := range fids {
		ioManager, err := creator(model.GetDataFileName(d.options.dirPath, model.DataFileType, fid))
		if err != nil {
			return nil, err
		}
		dataFile, err := model.OpenDataFile(fid, ioManager)
		if err != nil {
			_ = ioManager.Close()
			return nil, err
		}
		if i == len(fids)-1 {
			d.activeFile = dataFile
		} else {
			d.olderFiles[fid] = dataFile
		}
	}

	return fids, nil
}

type pendingRecord struct {
	typ model.RecordType
	lba uint32
	pos *model.RecordPos
}

// loadKeydirFromDataFiles replays the data files that are not covered by
// the hint file. Records of a write batch only apply once its tx-finish
// record is found.
func (d *Disk) loadKeydirFromDataFiles(fids []uint32) error {
	if len(fids) == 0 {
		return nil
	}

	var hasMerged bool
	var nonMergeFid uint32
	mergeFinishedFileName := model.GetDataFileName(d.options.dirPath, model.MergeFinishedFileType, 0)
	if _, err := os.Stat(mergeFinishedFileName); err == nil {
		fid, err := d.getNonMergeFid(d.options.dirPath)
		if err != nil {
			return err
		}
		hasMerged = true
		nonMergeFid = fid
	}

	pending := make(map[uint64][]pendingRecord)
	for _, fid := range fids {
		if hasMerged && fid < nonMergeFid {
			continue
		}

		dataFile := d.dataFile(fid)
		var offset int64
		for {
			record, size, err := d.getRecordFromDataFile(dataFile, offset)
			if err != nil {
				if err == io.EOF {
					break
				}
				return err
			}

			pos := &model.RecordPos{
				Fid:    fid,
				Offset: offset,
				Size:   uint32(size),
			}
			switch {
			case record.Seq == 0:
				d.applyRecord(record.Type, record.LBA, pos)
			case record.Type == model.TxFinishRecord:
				for _, p := range pending[record.Seq] {
					d.applyRecord(p.typ, p.lba, p.pos)
				}
				delete(pending, record.Seq)
				d.applyRecord(record.Type, record.LBA, pos)
			default:
				pending[record.Seq] = append(pending[record.Seq], pendingRecord{
					typ: record.Type,
					lba: record.LBA,
					pos: pos,
				})
			}

			if record.Seq > d.txSeq {
				d.txSeq = record.Seq
			}
			offset += size
		}
	}

	// records of batches that never committed are garbage
	for _, records := range pending {
		for _, p := range records {
			d.reclaimable += int64(p.pos.Size)
		}
	}

	return nil
}

// resetIOManagers swaps the read only mmap IO managers used for the replay
// for regular ones
func (d *Disk) resetIOManagers(fids []uint32) error {
	for _, fid := range fids {
		dataFile := d.dataFile(fid)
		if err := dataFile.Close(); err != nil {
			return err
		}
		ioManager, err := d.options.ioManagerCreator(model.GetDataFileName(d.options.dirPath, model.DataFileType, fid))
		if err != nil {
			return err
		}
		dataFile.IoManager = ioManager
		if dataFile.WriteOffset, err = ioManager.Size(); err != nil {
			return err
		}
	}
	return nil
}
