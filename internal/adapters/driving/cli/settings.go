package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure chunking, retrieval and source options.

Use subcommands to change specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsChunkingCmd = &cobra.Command{
	Use:   "chunking [size] [overlap]",
	Short: "Set chunk size and overlap",
	Long: `Set the target passage size and the number of trailing characters
carried between adjacent passages. Overlap must be smaller than size.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsChunking,
}

var settingsTopKCmd = &cobra.Command{
	Use:   "top-k [n]",
	Short: "Set the default number of cited sources",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTopK,
}

var settingsSplitterCmd = &cobra.Command{
	Use:   "splitter",
	Short: "Select the sentence splitter",
	RunE:  runSettingsSplitter,
}

var settingsAPIKeyCmd = &cobra.Command{
	Use:   "api-key",
	Short: "Set the NCBI API key",
	Long: `Store an NCBI API key, which raises the PubMed rate limit from 3 to
10 requests per second. Enter an empty key to clear it.`,
	RunE: runSettingsAPIKey,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsChunkingCmd)
	settingsCmd.AddCommand(settingsTopKCmd)
	settingsCmd.AddCommand(settingsSplitterCmd)
	settingsCmd.AddCommand(settingsAPIKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Current()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Chunking]")
	cmd.Printf("  Chunk size:    %d\n", settings.ChunkSize)
	cmd.Printf("  Chunk overlap: %d\n", settings.ChunkOverlap)
	cmd.Printf("  Splitter:      %s\n", settings.Splitter.Description())
	cmd.Println()

	cmd.Println("[Retrieval]")
	cmd.Printf("  Top K: %d\n", settings.TopK)
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Data directory: %s\n", settings.DataDir)
	cmd.Println()

	cmd.Println("[PubMed]")
	if settings.PubMed.APIKey != "" {
		cmd.Printf("  API key: %s\n", maskAPIKey(settings.PubMed.APIKey))
	} else {
		cmd.Printf("  API key: (not set)\n")
	}
	cmd.Printf("  Max per query: %d\n", settings.PubMed.MaxPerQuery)

	return nil
}

func runSettingsChunking(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[0], err)
	}
	overlap, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid overlap %q: %w", args[1], err)
	}

	if err := settingsService.SetChunking(size, overlap); err != nil {
		return fmt.Errorf("failed to set chunking: %w", err)
	}

	cmd.Printf("Chunking set to size=%d overlap=%d\n", size, overlap)
	return nil
}

func runSettingsTopK(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid top-k %q: %w", args[0], err)
	}

	if err := settingsService.SetTopK(k); err != nil {
		return fmt.Errorf("failed to set top-k: %w", err)
	}

	cmd.Printf("Top K set to %d\n", k)
	return nil
}

func runSettingsSplitter(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select Sentence Splitter")
	cmd.Println("------------------------")
	kinds := domain.AllSplitterKinds()
	for i, kind := range kinds {
		cmd.Printf("  %d. %s\n", i+1, kind.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(kinds), 1)

	selected := kinds[idx-1]
	if err := settingsService.SetSplitter(selected); err != nil {
		return fmt.Errorf("failed to set splitter: %w", err)
	}

	cmd.Printf("Splitter set to: %s\n", selected.Description())
	return nil
}

func runSettingsAPIKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Enter NCBI API key (empty to clear): ")
	key := readPassword()
	cmd.Println()

	if err := settingsService.SetPubMedAPIKey(key); err != nil {
		return fmt.Errorf("failed to set API key: %w", err)
	}

	if key == "" {
		cmd.Println("API key cleared")
	} else {
		cmd.Println("API key saved")
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
