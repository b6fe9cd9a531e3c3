package benchmark

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidflowers/mla-fileio/emudisk"
)

const sectorSize = 512

var disk *emudisk.Disk

func init() {
	dir, err := os.MkdirTemp("", "emudisk-bench")
	if err != nil {
		panic(err)
	}
	disk, err = emudisk.Create(context.Background(), sectorSize, emudisk.WithDirPath(dir), emudisk.WithCacheSize(1024))
	if err != nil {
		panic(err)
	}
}

func sector(i int) []byte {
	data := make([]byte, sectorSize)
	for j := range data {
		data[j] = byte(i + j)
	}
	return data
}

// Benchmark_SectorWrite .
func Benchmark_SectorWrite(b *testing.B) {
	ctx := context.Background()
	data := sector(0)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		err := disk.SectorWrite(ctx, uint32(i), data, true)
		assert.Nil(b, err)
	}
}

// Benchmark_SectorRead .
func Benchmark_SectorRead(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < 10000; i++ {
		err := disk.SectorWrite(ctx, uint32(i), sector(i), true)
		assert.Nil(b, err)
	}
	buf := make([]byte, sectorSize)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := disk.SectorRead(ctx, uint32(i%20000), buf); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_WriteBatch .
func Benchmark_WriteBatch(b *testing.B) {
	ctx := context.Background()
	data := sector(1)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		wb := disk.NewWriteBatch(emudisk.WithBatchSync(false))
		for j := 0; j < 8; j++ {
			assert.Nil(b, wb.Write(uint32(i*8+j), data))
		}
		assert.Nil(b, wb.Commit(ctx))
	}
}

// Benchmark_Trim .
func Benchmark_Trim(b *testing.B) {
	ctx := context.Background()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		err := disk.Trim(ctx, uint32(i))
		assert.Nil(b, err)
	}
}
