package emudisk

import (
	"github.com/davidflowers/mla-fileio/codec"
	"github.com/davidflowers/mla-fileio/fio"
	"github.com/davidflowers/mla-fileio/keydir"
)

const (
	MinSectorSize = 512
	MaxSectorSize = 64 << 10

	DefaultDataFileSize = 64 << 20
)

type options struct {
	dirPath      string
	dataFileSize int64

	// sectorCount bounds the addressable LBAs, 0 means the whole 32-bit range
	sectorCount uint64
	fillByte    byte
	cacheSize   int
	syncWrites  bool
	mmapLoad    bool

	ioManagerCreator fio.IOManagerCreator
	codec            codec.Codec
	keydir           keydir.Keydir
}

type Option func(*options)

var defaultIOManagerCreator = func(name string) (fio.IOManager, error) {
	return fio.NewFileIO(name)
}

func defaultOptions() *options {
	return &options{
		dataFileSize: DefaultDataFileSize,
		codec:        codec.NewCodecImpl(),
	}
}

// WithDirPath makes the disk persistent, the data files live in dirPath.
// A disk without a directory is volatile and lives in memory.
func WithDirPath(dirPath string) Option {
	return func(o *options) {
		o.dirPath = dirPath
	}
}

func WithDataFileSize(size int64) Option {
	return func(o *options) {
		o.dataFileSize = size
	}
}

// WithSectorCount rejects reads and writes at LBAs >= count
func WithSectorCount(count uint64) Option {
	return func(o *options) {
		o.sectorCount = count
	}
}

// WithFillByte sets the content of sectors that were never written
func WithFillByte(b byte) Option {
	return func(o *options) {
		o.fillByte = b
	}
}

// WithCacheSize caches up to size sectors in memory, 0 disables the cache
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithSyncWrites syncs the active data file after every write
func WithSyncWrites(sync bool) Option {
	return func(o *options) {
		o.syncWrites = sync
	}
}

// WithMMapLoad maps the data files while replaying them on open
func WithMMapLoad(mmap bool) Option {
	return func(o *options) {
		o.mmapLoad = mmap
	}
}

func WithIOManagerCreator(fn fio.IOManagerCreator) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

func WithCodec(codec codec.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

func WithKeydir(keydir keydir.Keydir) Option {
	return func(o *options) {
		o.keydir = keydir
	}
}

type writeBatchOptions struct {
	maxBatchNum int
	sync        bool
}

type WriteBatchOption func(*writeBatchOptions)

const defaultMaxBatchNum = 4096

func defaultWriteBatchOptions() *writeBatchOptions {
	return &writeBatchOptions{
		maxBatchNum: defaultMaxBatchNum,
		sync:        true,
	}
}

func WithMaxBatchNum(num int) WriteBatchOption {
	return func(o *writeBatchOptions) {
		o.maxBatchNum = num
	}
}

// WithBatchSync syncs the active data file when the batch commits
func WithBatchSync(sync bool) WriteBatchOption {
	return func(o *writeBatchOptions) {
		o.sync = sync
	}
}
