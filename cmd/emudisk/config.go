package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/davidflowers/mla-fileio/emudisk"
)

// config is the optional YAML file given with --config
type config struct {
	Dir          string `yaml:"dir"`
	DataFileSize int64  `yaml:"data_file_size"`
	SectorCount  uint64 `yaml:"sector_count"`
	FillByte     uint8  `yaml:"fill_byte"`
	CacheSize    int    `yaml:"cache_size"`
	SyncWrites   bool   `yaml:"sync_writes"`
	MMapLoad     bool   `yaml:"mmap_load"`
}

func loadConfig(filename string) (*config, error) {
	cfg := new(config)
	if filename == "" {
		return cfg, nil
	}

	fh, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	decoder := yaml.NewDecoder(fh)
	decoder.KnownFields(true)
	if err = decoder.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "config %q", filename)
	}
	if cfg.DataFileSize < 0 || cfg.CacheSize < 0 {
		return nil, errors.Errorf("config %q: sizes must not be negative", filename)
	}
	return cfg, nil
}

// Options maps the config onto disk options, fields left zero keep the
// disk defaults
func (cfg *config) Options() []emudisk.Option {
	var opts []emudisk.Option
	if cfg.DataFileSize > 0 {
		opts = append(opts, emudisk.WithDataFileSize(cfg.DataFileSize))
	}
	if cfg.SectorCount > 0 {
		opts = append(opts, emudisk.WithSectorCount(cfg.SectorCount))
	}
	if cfg.FillByte != 0 {
		opts = append(opts, emudisk.WithFillByte(cfg.FillByte))
	}
	if cfg.CacheSize > 0 {
		opts = append(opts, emudisk.WithCacheSize(cfg.CacheSize))
	}
	if cfg.SyncWrites {
		opts = append(opts, emudisk.WithSyncWrites(true))
	}
	if cfg.MMapLoad {
		opts = append(opts, emudisk.WithMMapLoad(true))
	}
	return opts
}
