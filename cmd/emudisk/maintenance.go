package main

import (
	"bufio"
	"os"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/davidflowers/mla-fileio/emudisk"
)

func init() {
	diskCommands = append(diskCommands,
		subcommand{
			Command: cobra.Command{
				Use:   "merge",
				Short: "Compact the data files, the result is installed on the next open",
				Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
			},
			RunE: func(disk *emudisk.Disk, cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()
				before, err := disk.Stat()
				if err != nil {
					return err
				}
				if err := <-disk.Merge(ctx); err != nil {
					return err
				}
				dlog.Infof(ctx, "merged disk %s, %d reclaimable bytes are released on the next open",
					disk.ID(), before.ReclaimableSize)
				return nil
			},
		},
		subcommand{
			Command: cobra.Command{
				Use:   "stat",
				Short: "Print disk statistics as JSON",
				Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
			},
			RunE: func(disk *emudisk.Disk, _ *cobra.Command, _ []string) (err error) {
				stat, err := disk.Stat()
				if err != nil {
					return err
				}
				buffer := bufio.NewWriter(os.Stdout)
				defer func() {
					if _err := buffer.Flush(); err == nil && _err != nil {
						err = _err
					}
				}()
				return lowmemjson.NewEncoder(buffer).Encode(stat)
			},
		},
	)
}
