package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/services"
)

var (
	evalJSON bool
	evalOut  string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate answer quality against the fixed question set",
	Long: `Runs the standing evaluation questions through the pipeline and
reports keyword-overlap metrics per question plus aggregates.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "output results as JSON")
	evalCmd.Flags().StringVarP(&evalOut, "out", "o", "", "also write JSON results to this file")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, _ []string) error {
	if evalService == nil {
		return errors.New("evaluation service not configured")
	}
	ctx := cmd.Context()

	if err := ensureCorpusLoaded(ctx); err != nil {
		return err
	}

	run, err := evalService.Evaluate(ctx, domain.DefaultEvalCases())
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if evalOut != "" {
		data, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		if err := os.WriteFile(evalOut, data, 0600); err != nil {
			return fmt.Errorf("writing %s: %w", evalOut, err)
		}
		cmd.Printf("Results written to %s\n", evalOut)
	}

	if evalJSON {
		data, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(services.RenderEvalReport(run))
	return nil
}
