package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/davidflowers/mla-fileio/drive"
	"github.com/davidflowers/mla-fileio/emudisk"
)

// diskHolder is implemented by drives that are backed by an emulated disk
type diskHolder interface {
	Disk() *emudisk.Disk
}

func lookupDrive(id string) (drive.Drive, error) {
	d, ok := drive.Lookup(id)
	if !ok {
		return nil, errors.Errorf("unknown drive %q", id)
	}
	return d, nil
}

// copyDisk writes every allocated sector of src to dst as one batch
func copyDisk(ctx context.Context, dst, src *emudisk.Disk) error {
	if dst.SectorSize() != src.SectorSize() {
		return errors.Wrapf(emudisk.ErrSectorSizeMismatch, "copy %d-byte sectors to %d-byte sectors",
			src.SectorSize(), dst.SectorSize())
	}
	wb := dst.NewWriteBatch(emudisk.WithMaxBatchNum(len(src.Sectors()) + 1))
	if err := src.Fold(ctx, wb.Write); err != nil {
		return err
	}
	return wb.Commit(ctx)
}

// writeDrive initializes d and copies its disk to a persistent disk in
// cfg.Dir. The drive is closed afterwards when it can be.
func writeDrive(ctx context.Context, cfg *config, d drive.Drive) (err error) {
	maybeSetErr := func(_err error) {
		if _err != nil && err == nil {
			err = _err
		}
	}

	holder, ok := d.(diskHolder)
	if !ok {
		return errors.Errorf("drive %q is not backed by an emulated disk", d.ID())
	}
	if err := d.Initialize(ctx); err != nil {
		return err
	}
	if closer, ok := d.(io.Closer); ok {
		defer func() {
			maybeSetErr(closer.Close())
		}()
	}
	src := holder.Disk()

	dst, err := emudisk.Create(ctx, src.SectorSize(), append(cfg.Options(), emudisk.WithDirPath(cfg.Dir))...)
	if err != nil {
		return err
	}
	defer func() {
		maybeSetErr(dst.Close())
	}()
	if err := copyDisk(ctx, dst, src); err != nil {
		return err
	}

	dlog.Infof(ctx, "wrote drive %s to disk %s in %q", d.ID(), dst.ID(), cfg.Dir)
	return nil
}

func init() {
	commands = append(commands,
		command{
			Command: cobra.Command{
				Use:   "drives",
				Short: "List the registered fixture drives",
				Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
			},
			RunE: func(_ *config, _ *cobra.Command, _ []string) error {
				for _, id := range drive.IDs() {
					fmt.Println(id)
				}
				return nil
			},
		},
		command{
			Command: cobra.Command{
				Use:   "init DRIVE",
				Short: "Write the content of a fixture drive to the disk in --dir",
				Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
			},
			RunE: func(cfg *config, cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				if cfg.Dir == "" {
					return errNoDir
				}

				d, err := lookupDrive(args[0])
				if err != nil {
					return err
				}
				return writeDrive(ctx, cfg, d)
			},
		},
		command{
			Command: cobra.Command{
				Use:   "print [DRIVE]",
				Short: "Dump the allocated sectors of the disk in --dir or of a fixture drive",
				Args:  cliutil.WrapPositionalArgs(cobra.MaximumNArgs(1)),
			},
			RunE: func(cfg *config, cmd *cobra.Command, args []string) (err error) {
				maybeSetErr := func(_err error) {
					if _err != nil && err == nil {
						err = _err
					}
				}
				ctx := cmd.Context()

				if len(args) == 1 {
					d, err := lookupDrive(args[0])
					if err != nil {
						return err
					}
					if err := d.Initialize(ctx); err != nil {
						return err
					}
					if closer, ok := d.(io.Closer); ok {
						defer func() {
							maybeSetErr(closer.Close())
						}()
					}
					return d.Print(ctx, os.Stdout)
				}

				if cfg.Dir == "" {
					return errNoDir
				}
				disk, err := emudisk.Open(ctx, cfg.Dir, cfg.Options()...)
				if err != nil {
					return err
				}
				defer func() {
					maybeSetErr(disk.Close())
				}()
				return disk.Print(ctx, os.Stdout)
			},
		},
	)
}
