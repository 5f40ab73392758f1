package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ecoavobot/internal/intent"
)

type classifyResult struct {
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence"`
	Answer     string  `json:"answer"`
	Outcome    string  `json:"outcome"`
	Strategy   string  `json:"strategy,omitempty"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <message...>",
		Short: "Classify a message against the catalog",
		Example: `  intentctl classify "Come posso riciclare la plastica?"
  intentctl classify --threshold 0.5 --json ciao`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, _, err := a.useCase(ctx)
			if err != nil {
				return err
			}

			out, err := uc.Classify(ctx, intent.ClassifyInput{Message: strings.Join(args, " ")})
			if err != nil {
				return err
			}

			res := classifyResult{
				Intent:     out.Tag,
				Confidence: out.Confidence,
				Answer:     out.Answer,
				Outcome:    string(out.Outcome),
				Strategy:   out.Strategy,
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			tag := res.Intent
			if tag == "" {
				tag = "-"
			}
			fmt.Fprintf(w, "intent:     %s\n", tag)
			fmt.Fprintf(w, "confidence: %.4f\n", res.Confidence)
			fmt.Fprintf(w, "outcome:    %s\n", res.Outcome)
			if res.Strategy != "" {
				fmt.Fprintf(w, "strategy:   %s\n", res.Strategy)
			}
			fmt.Fprintf(w, "answer:     %s\n", res.Answer)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
