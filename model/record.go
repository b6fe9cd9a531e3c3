package model

import "encoding/binary"

type RecordType = byte

const (
	// NormalRecord holds the content of one sector
	NormalRecord RecordType = iota
	// TrimRecord releases the backing storage of a sector
	TrimRecord
	// TxFinishRecord marks the end of a committed write batch
	TxFinishRecord
)

// MaxHeaderSize crc(4) + type(1) + seq(uvarint64) + lba(uvarint32) + size(varint64)
const MaxHeaderSize = 4 + 1 + binary.MaxVarintLen64 + binary.MaxVarintLen32 + binary.MaxVarintLen64

type RecordHeader struct {
	Crc      uint32
	Type     RecordType
	Seq      uint64 // write batch sequence, 0 for plain writes
	LBA      uint32
	DataSize int64
}

type Record struct {
	Type RecordType
	Seq  uint64
	LBA  uint32
	Data []byte
}

// RecordPos locates a record in the data files
type RecordPos struct {
	Fid    uint32 // file id
	Offset int64  // record position
	Size   uint32 // encoded record size, header included
}
