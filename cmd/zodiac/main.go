package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/zodiac/internal/config"
	"github.com/jeanpaul/zodiac/internal/logging"
	"github.com/jeanpaul/zodiac/internal/people"
)

var version = "dev"

// app carries what the subcommands share for one invocation.
type app struct {
	configFile string
	dataDir    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// result tells the store wrapper what a command did to the list.
// The list is written back only when dirty is set.
type result struct {
	people []people.Person
	dirty  bool
}

type storeFunc func(cmd *cobra.Command, list []people.Person) (result, error)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "zodiac",
		Short: "Manage a list of people and their zodiac signs",
		Long: `zodiac keeps a small list of people in a JSON file inside your data
directory (~/data by default). Records are checked against a fixed schema on
every load; broken records are skipped with a warning.

Examples:
  zodiac add people.json -n Anna -s Lee -d 05.08.2001 -z Leo
  zodiac list people.json
  zodiac select people.json -m 8`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ~/.config/zodiac/config.yaml)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory holding data files (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.addCmd(),
		a.listCmd(),
		a.selectCmd(),
		a.checkCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("data_dir", cfg.DataDir),
		zap.String("log_level", cfg.LogLevel),
	)
	return nil
}

// openStore creates the data directory and returns a store for the named file.
func (a *app) openStore(name string) (*people.Store, error) {
	if err := a.cfg.EnsureDataDir(); err != nil {
		return nil, err
	}
	return people.NewStore(a.cfg.DataFile(name), a.logger), nil
}

// withStore loads the data file named by the first argument, runs fn and
// saves the list back if fn reports it dirty.
func (a *app) withStore(fn storeFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := a.openStore(args[0])
		if err != nil {
			return err
		}
		list, err := store.Load()
		if err != nil {
			return err
		}

		res, err := fn(cmd, list)
		if err != nil {
			return err
		}
		if !res.dirty {
			return nil
		}
		return store.Save(res.people)
	}
}
