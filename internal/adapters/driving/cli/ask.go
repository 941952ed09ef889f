package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

var (
	askTopK int
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the corpus",
	Long: `Scores every passage in the corpus against the question and composes
an answer from the best matches, with cited sources and a confidence
estimate.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of sources to cite (0 = use configured default)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}
	ctx := cmd.Context()

	if err := ensureCorpusLoaded(ctx); err != nil {
		return err
	}

	topK := askTopK
	if topK <= 0 {
		topK = domain.DefaultTopK
		if settingsService != nil {
			topK = settingsService.Current().TopK
		}
	}

	result, err := retrievalService.Query(ctx, question, topK)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(result.Answer)
	cmd.Println()
	cmd.Printf("Confidence: %.2f\n", result.Confidence)

	if len(result.Sources) > 0 {
		cmd.Println("\nSources:")
		for i, source := range result.Sources {
			title := source.Passage.Meta.Title
			if title == "" {
				title = fmt.Sprintf("passage %d", source.Passage.ID)
			}
			cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, source.Score)
			if source.Passage.Meta.Section != "" {
				cmd.Printf("      Section: %s\n", source.Passage.Meta.Section)
			}
			if source.Passage.Meta.Source != "" {
				cmd.Printf("      Source: %s\n", source.Passage.Meta.Source)
			}
		}
	}
	return nil
}
