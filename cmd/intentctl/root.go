package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ecoavobot/config"
	"ecoavobot/internal/intent"
	fileRepo "ecoavobot/internal/intent/repository/file"
	"ecoavobot/internal/intent/usecase"
	"ecoavobot/pkg/log"
)

// app is shared by the subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "intentctl",
		Short:         "Inspect and query EcoAvoBot intent catalogs",
		Long:          "intentctl loads an intent catalog the same way the API does and lets you classify\nmessages, validate catalog files and list intents without running the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	flags.BoolVar(&a.verbose, "verbose", false, "log catalog loading to stderr")
	flags.String("catalog", "", "intent catalog file, overrides catalog.path")
	flags.Float64("threshold", 0, "primary similarity threshold, overrides matching.threshold")
	flags.String("strategy", "", "primary scoring strategy (vector or keyword)")
	flags.String("fallback-strategy", "", "fallback scoring strategy (vector, keyword or none)")

	_ = a.v.BindPFlag("catalog.path", flags.Lookup("catalog"))
	_ = a.v.BindPFlag("matching.threshold", flags.Lookup("threshold"))
	_ = a.v.BindPFlag("matching.strategy", flags.Lookup("strategy"))
	_ = a.v.BindPFlag("matching.fallback_strategy", flags.Lookup("fallback-strategy"))

	rootCmd.AddCommand(
		newClassifyCmd(a),
		newValidateCmd(a),
		newIntentsCmd(a),
	)
	return rootCmd
}

// load reads configuration. Flags only override values when set.
func (a *app) load() (*config.Config, error) {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	}
	return config.LoadWith(a.v)
}

func (a *app) logger() log.Logger {
	if !a.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole})
}

// useCase builds the intent use case with the catalog loaded. Unlike the
// server, a catalog that cannot be loaded is an error here.
func (a *app) useCase(ctx context.Context) (intent.UseCase, *config.Config, error) {
	cfg, err := a.load()
	if err != nil {
		return nil, nil, err
	}

	l := a.logger()
	uc, err := usecase.New(fileRepo.New(cfg.Catalog.Path, l), cfg.EngineConfig(), l)
	if err != nil {
		return nil, nil, err
	}
	if _, err := uc.Reload(ctx); err != nil {
		return nil, nil, fmt.Errorf("load catalog %s: %w", cfg.Catalog.Path, err)
	}
	return uc, cfg, nil
}
