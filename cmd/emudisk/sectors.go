package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/davidflowers/mla-fileio/emudisk"
	"github.com/davidflowers/mla-fileio/utils"
)

var dumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func parseLBA(str string) (uint32, error) {
	lba, err := strconv.ParseUint(str, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid lba %q", str)
	}
	return uint32(lba), nil
}

// parseRange parses "LBA [COUNT]", count defaults to 1
func parseRange(args []string) (lba uint32, count int, err error) {
	if lba, err = parseLBA(args[0]); err != nil {
		return 0, 0, err
	}
	count = 1
	if len(args) > 1 {
		n, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "invalid count %q", args[1])
		}
		count = int(n)
	}
	if uint64(lba)+uint64(count) > 1<<32 {
		return 0, 0, errors.Wrapf(emudisk.ErrLBAOutOfRange, "lba %d, %d sectors", lba, count)
	}
	return lba, count, nil
}

// readSectorsFile reads filename ("-" for stdin) and pads it with zeros to
// whole sectors
func readSectorsFile(filename string, sectorSize int) ([]byte, error) {
	var data []byte
	var err error
	if filename == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, err
	}
	if rem := len(data) % sectorSize; rem != 0 {
		data = append(data, make([]byte, sectorSize-rem)...)
	}
	return data, nil
}

func init() {
	var rawFlag bool
	readCmd := subcommand{
		Command: cobra.Command{
			Use:   "read LBA [COUNT]",
			Short: "Dump COUNT sectors starting at LBA",
			Args:  cliutil.WrapPositionalArgs(cobra.RangeArgs(1, 2)),
		},
		RunE: func(disk *emudisk.Disk, cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			lba, count, err := parseRange(args)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer func() {
				if _err := out.Flush(); err == nil && _err != nil {
					err = _err
				}
			}()

			buf := make([]byte, disk.SectorSize())
			for i := 0; i < count; i++ {
				if err := disk.SectorRead(ctx, lba+uint32(i), buf); err != nil {
					return err
				}
				if rawFlag {
					if _, err := out.Write(buf); err != nil {
						return err
					}
					continue
				}
				state := "allocated"
				if !disk.IsAllocated(lba + uint32(i)) {
					state = "unallocated"
				}
				fmt.Fprintf(out, "sector %d (%s):\n", lba+uint32(i), state)
				dumper.Fdump(out, buf)
			}
			return nil
		},
	}
	readCmd.Flags().BoolVar(&rawFlag, "raw", false, "write the sector bytes instead of a dump")

	var noAllocateFlag bool
	writeCmd := subcommand{
		Command: cobra.Command{
			Use:   "write LBA FILE",
			Short: "Write the content of FILE to consecutive sectors starting at LBA",
			Long: "The last sector is padded with zeros. A FILE of '-' reads stdin. " +
				"All sectors are written or none of them.",
			Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		},
		RunE: func(disk *emudisk.Disk, cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lba, err := parseLBA(args[0])
			if err != nil {
				return err
			}
			data, err := readSectorsFile(args[1], disk.SectorSize())
			if err != nil {
				return err
			}
			size := disk.SectorSize()
			count := len(data) / size
			if _, _, err := parseRange([]string{args[0], strconv.Itoa(count)}); err != nil {
				return err
			}

			if noAllocateFlag {
				for i := 0; i < count; i++ {
					if !disk.IsAllocated(lba + uint32(i)) {
						return errors.Wrapf(emudisk.ErrSectorNotAllocated, "lba %d", lba+uint32(i))
					}
				}
			}

			wb := disk.NewWriteBatch(emudisk.WithMaxBatchNum(count))
			for i := 0; i < count; i++ {
				start, end := utils.SectorOffset(i, size)
				if err := wb.Write(lba+uint32(i), data[start:end]); err != nil {
					return err
				}
			}
			if err := wb.Commit(ctx); err != nil {
				return err
			}
			dlog.Infof(ctx, "wrote %d sectors at lba %d", count, lba)
			return nil
		},
	}
	writeCmd.Flags().BoolVar(&noAllocateFlag, "no-allocate", false, "fail unless every sector is already allocated")

	trimCmd := subcommand{
		Command: cobra.Command{
			Use:   "trim LBA [COUNT]",
			Short: "Release COUNT sectors starting at LBA",
			Args:  cliutil.WrapPositionalArgs(cobra.RangeArgs(1, 2)),
		},
		RunE: func(disk *emudisk.Disk, cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lba, count, err := parseRange(args)
			if err != nil {
				return err
			}
			wb := disk.NewWriteBatch(emudisk.WithMaxBatchNum(count))
			for i := 0; i < count; i++ {
				if err := wb.Trim(lba + uint32(i)); err != nil {
					return err
				}
			}
			n := wb.Len()
			if err := wb.Commit(ctx); err != nil {
				return err
			}
			dlog.Infof(ctx, "trimmed %d sectors", n)
			return nil
		},
	}

	diskCommands = append(diskCommands, readCmd, writeCmd, trimCmd)
}
