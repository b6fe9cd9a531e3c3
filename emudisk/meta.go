package emudisk

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/davidflowers/mla-fileio/model"
)

// meta is stored in the DISK file of a persistent disk
type meta struct {
	ID         string    `yaml:"id"`
	SectorSize int       `yaml:"sector_size"`
	CreatedAt  time.Time `yaml:"created_at"`
}

func newMeta(sectorSize int) *meta {
	return &meta{
		ID:         uuid.New().String(),
		SectorSize: sectorSize,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

// readMeta return nil without error when dir holds no disk
func readMeta(dir string) (*meta, error) {
	data, err := os.ReadFile(filepath.Join(dir, model.MetaFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	m := new(meta)
	if err = yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(ErrDataFileCorrupted, "parse %s: %v", model.MetaFileName, err)
	}
	if _, err = uuid.Parse(m.ID); err != nil {
		return nil, errors.Wrapf(ErrDataFileCorrupted, "parse %s: %v", model.MetaFileName, err)
	}
	return m, nil
}

func writeMeta(dir string, m *meta) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}

	name := filepath.Join(dir, model.MetaFileName)
	tmp := name + ".tmp"
	if err = os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, name)
}
