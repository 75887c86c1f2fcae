// Command reclist manages files of fixed-layout employee, student, and
// course records: adding, removing, listing, ranking, and converting
// them between file formats.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/recordkit/reclist/config"
)

type app struct {
	configPath string
	verbose    bool
	kind       string
	file       string

	conf   config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "reclist",
		Short: "Manage fixed-layout record files",
		Long: `reclist keeps employee, student, and course records in binary
record files. Every command loads the file into a linked list, applies
the change, and writes the list back.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "reclist.yaml", "configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&a.kind, "kind", "k", "employee", "record kind: employee, student, or course")
	flags.StringVarP(&a.file, "file", "f", "", "record file (default <data_dir>/<kind>.dat)")

	root.AddCommand(
		a.addCmd(),
		a.listCmd(),
		a.getCmd(),
		a.removeCmd(),
		a.sortCmd(),
		a.convertCmd(),
		a.checkCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	conf, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.conf = conf

	zconf := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(conf.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zconf.Level = zap.NewAtomicLevelAt(level)

	a.logger, err = zconf.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = a.logger.With(zap.String("command", cmd.Name()), zap.String("kind", a.kind))
	return nil
}

func (a *app) path() string {
	if a.file != "" {
		return a.file
	}
	return filepath.Join(a.conf.DataDir, a.kind+".dat")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
