package emudisk

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/davidflowers/mla-fileio/fio"
	"github.com/davidflowers/mla-fileio/model"
)

const mergeDirPathSuffix = "-emudisk-merge"

// Merge rewrites the live sectors of the older data files into a sibling
// directory and generates the hint file. It is asynchronous, the result is
// sent on the returned channel. The merged files replace the old ones the
// next time the disk is opened.
func (d *Disk) Merge(ctx context.Context) chan error {
	done := make(chan error, 1)
	go func() {
		done <- d.doMerge(ctx)
	}()
	return done
}

func (d *Disk) doMerge(ctx context.Context) error {
	if d.options.dirPath == "" {
		return ErrVolatileDisk
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDiskClosed
	}
	if d.activeFile == nil {
		d.mu.Unlock()
		return nil
	}
	if d.isMerging {
		d.mu.Unlock()
		return ErrMergeIsProgress
	}
	d.isMerging = true
	defer func() {
		d.mu.Lock()
		d.isMerging = false
		d.mu.Unlock()
	}()

	// sync the current active file
	if err := d.activeFile.Sync(); err != nil {
		d.mu.Unlock()
		return err
	}

	// change the active file to read-only
	if err := d.setActiveDatafile(); err != nil {
		d.mu.Unlock()
		return err
	}

	nonMergeFid := d.activeFile.Fid
	fids := maps.Keys(d.olderFiles)
	slices.Sort(fids)
	mergeFiles := make([]*model.DataFile, 0, len(fids))
	for _, fid := range fids {
		mergeFiles = append(mergeFiles, d.olderFiles[fid])
	}
	d.mu.Unlock()

	dlog.Infof(ctx, "emudisk: merging %d data files of disk %s", len(mergeFiles), d.meta.ID)

	// create a new disk dir for the merge
	mergeDirPath := d.getMergeDirPath()
	// remove the old merge dir
	if _, err := os.Stat(mergeDirPath); err == nil {
		if err = os.RemoveAll(mergeDirPath); err != nil {
			return err
		}
	}

	mergeDisk, err := Create(ctx, d.sectorSize,
		WithDirPath(mergeDirPath),
		WithDataFileSize(d.options.dataFileSize),
		WithCodec(d.options.codec))
	if err != nil {
		return err
	}
	defer mergeDisk.Close()

	// write valid records to the merge disk and generate the hint file
	hintIoManager, err := fio.NewFileIO(model.GetDataFileName(mergeDirPath, model.HintFileType, 0))
	if err != nil {
		return err
	}
	hintFile, err := model.OpenDataFile(0, hintIoManager)
	if err != nil {
		_ = hintIoManager.Close()
		return err
	}
	defer hintFile.Close()

	var merged int
	for _, dataFile := range mergeFiles {
		var offset int64
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			record, size, err := d.getRecordFromDataFile(dataFile, offset)
			if err != nil {
				if err == io.EOF {
					break
				}
				return err
			}

			// only the latest record of an allocated sector is kept
			pos := d.options.keydir.Get(record.LBA)
			if record.Type == model.NormalRecord &&
				pos != nil &&
				pos.Fid == dataFile.Fid &&
				pos.Offset == offset {
				// clear transaction flag
				newPos, err := mergeDisk.appendRecord(&model.Record{
					Type: model.NormalRecord,
					LBA:  record.LBA,
					Data: record.Data,
				})
				if err != nil {
					return err
				}

				posRecordData, err := d.marshalPosRecord(record.LBA, newPos)
				if err != nil {
					return err
				}
				if err = hintFile.Write(posRecordData); err != nil {
					return err
				}
				merged++
			}

			offset += size
		}
	}

	// sync the hint file and the merge disk
	if err = hintFile.Sync(); err != nil {
		return err
	}
	if err = mergeDisk.Sync(); err != nil {
		return err
	}

	// write the merge finished file
	if err = d.writeMergeFinishedFile(mergeDirPath, nonMergeFid); err != nil {
		return err
	}

	dlog.Infof(ctx, "emudisk: merged %d sectors of disk %s", merged, d.meta.ID)
	return nil
}

func (d *Disk) marshalPosRecord(lba uint32, pos *model.RecordPos) ([]byte, error) {
	posRecordValue, err := d.options.codec.MarshalRecordPos(pos)
	if err != nil {
		return nil, err
	}
	posRecordData, _, err := d.marshalRecord(&model.Record{
		Type: model.NormalRecord,
		LBA:  lba,
		Data: posRecordValue,
	})
	return posRecordData, err
}

func (d *Disk) writeMergeFinishedFile(mergeDirPath string, fid uint32) error {
	mergeFinishedIoManager, err := fio.NewFileIO(model.GetDataFileName(mergeDirPath, model.MergeFinishedFileType, 0))
	if err != nil {
		return err
	}
	defer mergeFinishedIoManager.Close()
	mergeFinishedDataFile, err := model.OpenDataFile(0, mergeFinishedIoManager)
	if err != nil {
		return err
	}

	// the merge finished file store the non-merged file id
	mergeFinishedRecordData, _, err := d.marshalRecord(&model.Record{
		Type: model.NormalRecord,
		Data: []byte(strconv.FormatUint(uint64(fid), 10)),
	})
	if err != nil {
		return err
	}
	if err = mergeFinishedDataFile.Write(mergeFinishedRecordData); err != nil {
		return err
	}

	return mergeFinishedDataFile.Sync()
}

func (d *Disk) getMergeDirPath() string {
	dir := filepath.Dir(filepath.Clean(d.options.dirPath))
	base := filepath.Base(d.options.dirPath)
	return filepath.Join(dir, base+mergeDirPathSuffix)
}

// loadMergeFiles installs a finished merge: the merged data files and the
// hint file replace the data files they were built from
func (d *Disk) loadMergeFiles(ctx context.Context) error {
	mergePath := d.getMergeDirPath()
	// merge dir not exist
	if _, err := os.Stat(mergePath); os.IsNotExist(err) {
		return nil
	}
	defer func() {
		_ = os.RemoveAll(mergePath)
	}()

	dirEntries, err := os.ReadDir(mergePath)
	if err != nil {
		return err
	}

	// check whether the merge is finished
	var finished bool
	mergeFileNames := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		name := entry.Name()
		switch {
		case name == model.MergeFinishedFileName:
			finished = true
			mergeFileNames = append(mergeFileNames, name)
		case name == model.HintFileName, strings.HasSuffix(name, model.DataFileSuffix):
			mergeFileNames = append(mergeFileNames, name)
		}
	}

	if !finished {
		dlog.Warnf(ctx, "emudisk: dropping unfinished merge in %q", mergePath)
		return nil
	}

	nonMergeFid, err := d.getNonMergeFid(mergePath)
	if err != nil {
		return err
	}

	// remove old files
	for fid := uint32(0); fid < nonMergeFid; fid++ {
		fileName := model.GetDataFileName(d.options.dirPath, model.DataFileType, fid)
		if _, err = os.Stat(fileName); err == nil {
			if err = os.Remove(fileName); err != nil {
				return err
			}
		}
	}

	// move the merge files to the disk
	for _, fileName := range mergeFileNames {
		srcPath := filepath.Join(mergePath, fileName)
		dstPath := filepath.Join(d.options.dirPath, fileName)
		if err = os.Rename(srcPath, dstPath); err != nil {
			return err
		}
	}

	dlog.Infof(ctx, "emudisk: installed merged data files below fid %d", nonMergeFid)
	return nil
}

func (d *Disk) getNonMergeFid(dir string) (uint32, error) {
	mergeFinishedIoManager, err := fio.NewFileIO(model.GetDataFileName(dir, model.MergeFinishedFileType, 0))
	if err != nil {
		return 0, err
	}
	defer mergeFinishedIoManager.Close()
	mergeFinishedDataFile, err := model.OpenDataFile(0, mergeFinishedIoManager)
	if err != nil {
		return 0, err
	}

	mergeFinishedRecord, _, err := d.getRecordFromDataFile(mergeFinishedDataFile, 0)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidMergeFinishedFile, "%v", err)
	}

	fid, err := strconv.ParseUint(string(mergeFinishedRecord.Data), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidMergeFinishedFile, "%v", err)
	}

	return uint32(fid), nil
}

func (d *Disk) loadKeydirFromHintFile() error {
	hintFileName := model.GetDataFileName(d.options.dirPath, model.HintFileType, 0)
	if _, err := os.Stat(hintFileName); os.IsNotExist(err) {
		return nil
	}

	hintFileIoManager, err := fio.NewFileIO(hintFileName)
	if err != nil {
		return err
	}
	defer hintFileIoManager.Close()

	hintFile, err := model.OpenDataFile(0, hintFileIoManager)
	if err != nil {
		return err
	}

	var offset int64
	for {
		// read record from the hint file
		record, size, err := d.getRecordFromDataFile(hintFile, offset)
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}

		pos := new(model.RecordPos)
		if err = d.options.codec.UnmarshalRecordPos(record.Data, pos); err != nil {
			return err
		}

		// put the index to the disk
		d.options.keydir.Put(record.LBA, pos)
		offset += size
	}

	return nil
}
