// Package drive keeps the table of emulated drives known to the process.
// Fixture drives register themselves from their package init, tools look
// them up by ID.
package drive

import (
	"context"
	"io"

	"git.lukeshu.com/go/typedsync"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	ErrDuplicateDrive = errors.New("drive err: drive already registered")
	ErrEmptyID        = errors.New("drive err: drive id is empty")
)

type Drive interface {
	// Initialize (re)creates the backing disk and loads the drive content
	Initialize(ctx context.Context) error
	Print(ctx context.Context, w io.Writer) error
	ID() string
}

// SectorDevice is a Drive that transfers whole sectors.
type SectorDevice interface {
	Drive
	ReadSector(ctx context.Context, buf []byte, lba uint32, count int) error
	WriteSector(ctx context.Context, buf []byte, lba uint32, count int) error
}

var drives typedsync.Map[string, Drive]

func Register(d Drive) error {
	id := d.ID()
	if id == "" {
		return ErrEmptyID
	}
	if _, loaded := drives.LoadOrStore(id, d); loaded {
		return errors.Wrapf(ErrDuplicateDrive, "%q", id)
	}
	return nil
}

func MustRegister(d Drive) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

func Lookup(id string) (Drive, bool) {
	return drives.Load(id)
}

// IDs returns the registered drive IDs in sorted order
func IDs() []string {
	var ids []string
	drives.Range(func(id string, _ Drive) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)
	return ids
}

func Unregister(id string) {
	drives.Delete(id)
}
