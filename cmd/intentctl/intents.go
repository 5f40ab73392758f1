package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ecoavobot/internal/intent"
)

func newIntentsCmd(a *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "intents",
		Short: "List the catalog intents",
		Example: `  intentctl intents
  intentctl intents --filter ric`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, _, err := a.useCase(ctx)
			if err != nil {
				return err
			}

			out, err := uc.ListIntents(ctx, intent.ListIntentsInput{Query: filter})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TAG\tPATTERNS\tRESPONSES")
			for _, it := range out.Intents {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", it.Tag, it.PatternCount, it.ResponseCount)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d intents\n", out.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy filter on intent tags")
	return cmd
}
