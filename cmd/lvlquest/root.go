package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlquest/internal/catalog"
	"github.com/katalvlaran/lvlquest/internal/config"
)

// app carries state shared by the subcommands. A preset log is kept, which
// lets tests silence output.
type app struct {
	cfgPath string
	envPath string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lvlquest",
		Short:        "Run and compare solution variants of classic algorithm problems",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "lvlquest.yaml", "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&a.envPath, "env-file", ".env", "dotenv file with LVLQUEST_* variables")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(listCmd(a), runCmd(a), cacheCmd(a))
	return cmd
}

func (a *app) setup() error {
	if err := config.LoadDotEnv(a.envPath); err != nil {
		return err
	}
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log != nil {
		return nil
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	a.log, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// registry builds the catalog with configured and extra case files.
func (a *app) registry(extra []string) (*catalog.Registry, error) {
	reg, err := catalog.New()
	if err != nil {
		return nil, err
	}
	for _, f := range append(append([]string{}, a.cfg.CaseFiles...), extra...) {
		if err := reg.LoadCaseFile(f); err != nil {
			return nil, err
		}
		a.log.Debug("loaded cases", zap.String("file", f))
	}

	return reg, nil
}
