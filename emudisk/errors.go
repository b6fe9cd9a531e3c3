package emudisk

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidSectorSize  = addPrefix("invalid sector size")
	ErrSectorSize         = addPrefix("buffer size does not match the sector size")
	ErrLBAOutOfRange      = addPrefix("lba out of range")
	ErrSectorNotAllocated = addPrefix("sector is not allocated")
	ErrDataFileSize       = addPrefix("data file size can not hold a sector")

	ErrDiskClosed         = addPrefix("disk is closed")
	ErrNoDisk             = addPrefix("no disk in directory")
	ErrSectorSizeMismatch = addPrefix("sector size does not match the disk")
	ErrNoDataFile         = addPrefix("no data file")
	ErrDirIsUsing         = addPrefix("directory is using")
	ErrDataFileCorrupted  = addPrefix("data file may be corrupted")

	ErrVolatileDisk             = addPrefix("operation needs a persistent disk")
	ErrMergeIsProgress          = addPrefix("merge is in progress")
	ErrInvalidMergeFinishedFile = addPrefix("invalid merge finished file")
	ErrExceedMaxBatchNum        = addPrefix("exceed the max batch num")
)

func addPrefix(errStr string) error {
	return errors.New("emudisk err: " + errStr)
}
