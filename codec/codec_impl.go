package codec

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/davidflowers/mla-fileio/model"
)

var (
	ErrMalformedHeader = errors.New("codec: malformed record header")
	ErrMalformedPos    = errors.New("codec: malformed record position")
)

var _ Codec = (*CodecImpl)(nil)

type CodecImpl struct{}

func NewCodecImpl() *CodecImpl {
	return &CodecImpl{}
}

/*
default codec:
	- header: crc(4) + type(1) + seq(uvarint) + lba(uvarint) + dataSize(varint) (max 30 bytes)
	- record: the sector payload follows the header
	crc | type | seq | lba | dataSize | data
*/

// MarshalRecordHeader return header data and data size
func (cl *CodecImpl) MarshalRecordHeader(header *model.RecordHeader) ([]byte, int64, error) {
	data := make([]byte, model.MaxHeaderSize)

	// crc
	binary.BigEndian.PutUint32(data[:4], header.Crc)

	// type
	data[4] = header.Type

	// seq, lba and data size
	idx := 5
	idx += binary.PutUvarint(data[idx:], header.Seq)
	idx += binary.PutUvarint(data[idx:], uint64(header.LBA))
	idx += binary.PutVarint(data[idx:], header.DataSize)

	return data[:idx], int64(idx), nil
}

func (cl *CodecImpl) UnmarshalRecordHeader(headerData []byte, header *model.RecordHeader) (int64, error) {
	if len(headerData) < 5 {
		return 0, io.EOF
	}

	// get crc
	crc := binary.BigEndian.Uint32(headerData[:4])

	// get type
	typ := headerData[4]
	if typ > model.TxFinishRecord {
		return 0, ErrMalformedHeader
	}

	idx := 5
	seq, n := binary.Uvarint(headerData[idx:])
	if n <= 0 {
		return 0, ErrMalformedHeader
	}
	idx += n

	lba, n := binary.Uvarint(headerData[idx:])
	if n <= 0 || lba > uint64(^uint32(0)) {
		return 0, ErrMalformedHeader
	}
	idx += n

	dataSize, n := binary.Varint(headerData[idx:])
	if n <= 0 || dataSize < 0 {
		return 0, ErrMalformedHeader
	}
	idx += n

	header.Crc = crc
	header.Type = typ
	header.Seq = seq
	header.LBA = uint32(lba)
	header.DataSize = dataSize

	return int64(idx), nil
}

func (cl *CodecImpl) MarshalRecordPos(pos *model.RecordPos) ([]byte, error) {
	buf := make([]byte, binary.MaxVarintLen32*2+binary.MaxVarintLen64)
	var index = 0
	index += binary.PutVarint(buf[index:], int64(pos.Fid))
	index += binary.PutVarint(buf[index:], pos.Offset)
	index += binary.PutVarint(buf[index:], int64(pos.Size))
	return buf[:index], nil
}

func (cl *CodecImpl) UnmarshalRecordPos(buf []byte, pos *model.RecordPos) error {
	var index = 0
	fileId, n := binary.Varint(buf[index:])
	if n <= 0 {
		return ErrMalformedPos
	}
	index += n
	offset, n := binary.Varint(buf[index:])
	if n <= 0 {
		return ErrMalformedPos
	}
	index += n
	size, n := binary.Varint(buf[index:])
	if n <= 0 {
		return ErrMalformedPos
	}
	pos.Fid = uint32(fileId)
	pos.Offset = offset
	pos.Size = uint32(size)
	return nil
}
