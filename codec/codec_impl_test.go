package codec

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidflowers/mla-fileio/model"
)

func newCodecImpl() *CodecImpl {
	return NewCodecImpl()
}

func TestCodecImpl_MarshalRecordHeader(t *testing.T) {
	cl := newCodecImpl()
	header := &model.RecordHeader{
		Crc:      123,
		Type:     model.TrimRecord,
		Seq:      0,
		LBA:      1 + 1<<7,
		DataSize: 2,
	}
	data, size, err := cl.MarshalRecordHeader(header)
	assert.Nil(t, err)
	assert.Equal(t, []byte{0, 0, 0, 123, 1, 0, 129, 1, 4}, data)
	assert.Equal(t, 9, int(size))
}

func TestCodecImpl_UnmarshalRecordHeader(t *testing.T) {
	cl := newCodecImpl()
	header := &model.RecordHeader{}
	data := []byte{0, 0, 0, 123, 1, 0, 129, 1, 4}
	size, err := cl.UnmarshalRecordHeader(data, header)
	assert.Nil(t, err)
	assert.Equal(t, int64(9), size)
	assert.Equal(t, uint32(123), header.Crc)
	assert.Equal(t, model.TrimRecord, header.Type)
	assert.Equal(t, uint64(0), header.Seq)
	assert.Equal(t, uint32(1+1<<7), header.LBA)
	assert.Equal(t, int64(2), header.DataSize)
}

func TestCodecImpl_RecordHeaderWithSeq(t *testing.T) {
	cl := newCodecImpl()
	header := &model.RecordHeader{
		Crc:      0xdeadbeef,
		Type:     model.NormalRecord,
		Seq:      1 << 40,
		LBA:      8075,
		DataSize: 512,
	}
	data, size, err := cl.MarshalRecordHeader(header)
	assert.Nil(t, err)
	assert.LessOrEqual(t, size, int64(model.MaxHeaderSize))

	// trailing payload bytes must not confuse the decoder
	data = append(data, 0xF8, 0xFF, 0xFF, 0x0F)

	got := &model.RecordHeader{}
	n, err := cl.UnmarshalRecordHeader(data, got)
	assert.Nil(t, err)
	assert.Equal(t, size, n)
	assert.Equal(t, header, got)
}

func TestCodecImpl_UnmarshalRecordHeader_Errors(t *testing.T) {
	cl := newCodecImpl()

	_, err := cl.UnmarshalRecordHeader([]byte{0, 0, 0}, &model.RecordHeader{})
	assert.Equal(t, io.EOF, err)

	_, err = cl.UnmarshalRecordHeader([]byte{0, 0, 0, 0, 9, 0, 0, 0}, &model.RecordHeader{})
	assert.Equal(t, ErrMalformedHeader, err)

	// truncated lba varint
	_, err = cl.UnmarshalRecordHeader([]byte{0, 0, 0, 0, 0, 0, 0x80}, &model.RecordHeader{})
	assert.Equal(t, ErrMalformedHeader, err)
}

func TestCodecImpl_RecordPos(t *testing.T) {
	cl := newCodecImpl()
	pos := &model.RecordPos{
		Fid:    3,
		Offset: 1 << 33,
		Size:   520,
	}
	data, err := cl.MarshalRecordPos(pos)
	assert.Nil(t, err)

	got := &model.RecordPos{}
	err = cl.UnmarshalRecordPos(data, got)
	assert.Nil(t, err)
	assert.Equal(t, pos, got)

	err = cl.UnmarshalRecordPos(nil, got)
	assert.Equal(t, ErrMalformedPos, err)
}
