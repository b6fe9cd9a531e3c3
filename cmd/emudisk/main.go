// Command emudisk inspects and edits emulated disks and materializes the
// registered fixture drives.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/davidflowers/mla-fileio/emudisk"

	_ "github.com/davidflowers/mla-fileio/drive/drv059"
)

var errNoDir = errors.New("no disk directory, set --dir or dir in the config file")

// subcommand runs against the disk in --dir, opened before RunE and closed
// after it.
type subcommand struct {
	cobra.Command
	RunE func(*emudisk.Disk, *cobra.Command, []string) error
}

// command runs without a disk being opened for it.
type command struct {
	cobra.Command
	RunE func(*config, *cobra.Command, []string) error
}

var (
	diskCommands []subcommand
	commands     []command
)

func main() {
	logLevelFlag := logLevelFlag{
		Level: logrus.InfoLevel,
	}
	var dirFlag, configFlag string

	argparser := &cobra.Command{
		Use:   "emudisk {[flags]|SUBCOMMAND}",
		Short: "Inspect and edit emulated sector disks",

		Args: cliutil.WrapPositionalArgs(cliutil.OnlySubcommands),
		RunE: cliutil.RunSubcommands,

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc will handle it

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().Var(&logLevelFlag, "verbosity", "set the verbosity")
	argparser.PersistentFlags().StringVar(&dirFlag, "dir", "", "use the disk stored in `directory`")
	if err := argparser.MarkPersistentFlagDirname("dir"); err != nil {
		panic(err)
	}
	argparser.PersistentFlags().StringVar(&configFlag, "config", "", "load disk options from the YAML file `config.yaml`")
	if err := argparser.MarkPersistentFlagFilename("config", "yaml", "yml"); err != nil {
		panic(err)
	}

	run := func(cmd *cobra.Command, fn func(ctx context.Context, cfg *config) error) error {
		ctx := cmd.Context()
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logLevelFlag.Level)
		ctx = dlog.WithLogger(ctx, dlog.WrapLogrus(logger))

		cfg, err := loadConfig(configFlag)
		if err != nil {
			return err
		}
		if dirFlag != "" {
			cfg.Dir = dirFlag
		}

		grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{
			EnableSignalHandling: true,
		})
		grp.Go("main", func(ctx context.Context) error {
			cmd.SetContext(ctx)
			return fn(ctx, cfg)
		})
		return grp.Wait()
	}

	for _, child := range commands {
		cmd := child.Command
		runE := child.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(_ context.Context, cfg *config) error {
				return runE(cfg, cmd, args)
			})
		}
		argparser.AddCommand(&cmd)
	}

	for _, child := range diskCommands {
		cmd := child.Command
		runE := child.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, cfg *config) (err error) {
				maybeSetErr := func(_err error) {
					if _err != nil && err == nil {
						err = _err
					}
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
				return runE(disk, cmd, args)
			})
		}
		argparser.AddCommand(&cmd)
	}

	if err := argparser.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
