package model

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/davidflowers/mla-fileio/fio"
)

type FileType = byte

const (
	DataFileType FileType = iota
	HintFileType
	MergeFinishedFileType
)

const (
	DataFileSuffix        = ".sec"
	HintFileName          = "sector.hint"
	MergeFinishedFileName = "merge.finished"
	MetaFileName          = "DISK"
)

// GetDataFileName return the path of a file in the disk directory
func GetDataFileName(dir string, fileType FileType, fid uint32) string {
	switch fileType {
	case HintFileType:
		return filepath.Join(dir, HintFileName)
	case MergeFinishedFileType:
		return filepath.Join(dir, MergeFinishedFileName)
	default:
		return filepath.Join(dir, fmt.Sprintf("%09d%s", fid, DataFileSuffix))
	}
}

type DataFile struct {
	Fid         uint32
	WriteOffset int64 // only active data file use this field
	IoManager   fio.IOManager
}

func OpenDataFile(fid uint32, ioManager fio.IOManager) (*DataFile, error) {
	size, err := ioManager.Size()
	if err != nil {
		return nil, err
	}
	return &DataFile{
		Fid:         fid,
		WriteOffset: size,
		IoManager:   ioManager,
	}, nil
}

func (df *DataFile) Sync() error {
	return df.IoManager.Sync()
}

func (df *DataFile) Close() error {
	return df.IoManager.Close()
}

func (df *DataFile) Size() (int64, error) {
	return df.IoManager.Size()
}

// Write binary data into file
func (df *DataFile) Write(data []byte) error {
	size, err := df.IoManager.Write(data)
	if err != nil {
		return err
	}
	df.WriteOffset += int64(size)
	return nil
}

// ReadRecordHeader return at most MaxHeaderSize bytes starting at offset,
// io.EOF when offset is at the end of the file
func (df *DataFile) ReadRecordHeader(offset int64) ([]byte, error) {
	fileSize, err := df.IoManager.Size()
	if err != nil {
		return nil, err
	}
	if offset >= fileSize {
		return nil, io.EOF
	}

	var headerBuf int64 = MaxHeaderSize
	if headerBuf+offset > fileSize {
		headerBuf = fileSize - offset
	}

	return df.readNBytes(offset, headerBuf)
}

// ReadRecord return size bytes starting at off, io.ErrUnexpectedEOF when
// the file ends before them
func (df *DataFile) ReadRecord(off, size int64) ([]byte, error) {
	fileSize, err := df.IoManager.Size()
	if err != nil {
		return nil, err
	}
	if size < 0 || off > fileSize || size > fileSize-off {
		return nil, io.ErrUnexpectedEOF
	}
	return df.readNBytes(off, size)
}

func (df *DataFile) readNBytes(offset, n int64) ([]byte, error) {
	buf := make([]byte, n)
	read, err := df.IoManager.Read(buf, offset)
	if err != nil {
		if err == io.EOF && int64(read) == n {
			return buf, nil
		}
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
