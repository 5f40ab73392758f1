package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecoavobot/internal/intent/engine"
	fileRepo "ecoavobot/internal/intent/repository/file"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog-file]",
		Short: "Check that a catalog file loads and indexes",
		Long:  "validate decodes the catalog (JSON or YAML), checks its schema and builds the\nmatching index, reporting the first problem found.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			path := cfg.Catalog.Path
			if len(args) == 1 {
				path = args[0]
			}

			catalog, err := fileRepo.New(path, a.logger()).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			e, err := engine.New(catalog, cfg.EngineConfig())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s has %d intents, %d patterns, %d terms\n",
				path, len(catalog.Intents), e.Entries(), len(e.Model().Vocabulary()))
			return nil
		},
	}
}
