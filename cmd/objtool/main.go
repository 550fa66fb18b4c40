// objtool checks, formats and inspects Wavefront OBJ files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/objkit/internal/config"
	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/internal/report"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// errReported means the failure was already shown to the user.
var errReported = errors.New("problems found")

// app carries state shared by every subcommand.
type app struct {
	flags config.Flags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "objtool",
		Short:         "Check, format and inspect Wavefront OBJ files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(&a.flags)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			logger.Debug("config loaded", zap.String("command", cmd.Name()), zap.Any("config", cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	a.flags.Register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newFmtCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newShellCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprint(os.Stderr, report.Failure(err))
		}
		os.Exit(1)
	}
}
