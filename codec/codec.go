// Package codec encodes the on-disk record headers of a disk and the
// sector positions stored in its hint file.
package codec

import "github.com/davidflowers/mla-fileio/model"

type Codec interface {
	// MarshalRecordHeader return header data and header size, the crc bytes
	// are filled by the caller once the data is known
	MarshalRecordHeader(*model.RecordHeader) ([]byte, int64, error)

	// UnmarshalRecordHeader decodes a header from the front of the slice and
	// returns its size, the slice may hold more bytes than the header
	UnmarshalRecordHeader([]byte, *model.RecordHeader) (int64, error)

	// MarshalRecordPos encodes where a sector lives, it is the payload of a
	// hint record
	MarshalRecordPos(*model.RecordPos) ([]byte, error)

	UnmarshalRecordPos([]byte, *model.RecordPos) error
}
