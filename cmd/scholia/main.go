// Command scholia is the entry point for the scholia CLI.
// It wires the adapters to the core services and hands control to cobra.
package main

import (
	"fmt"
	"os"

	"github.com/scholia-labs/scholia-cli/internal/adapters/driven/config/file"
	"github.com/scholia-labs/scholia-cli/internal/adapters/driven/segment"
	"github.com/scholia-labs/scholia-cli/internal/adapters/driven/storage/memory"
	"github.com/scholia-labs/scholia-cli/internal/adapters/driven/storage/sqlite"
	"github.com/scholia-labs/scholia-cli/internal/adapters/driving/cli"
	"github.com/scholia-labs/scholia-cli/internal/connectors/biorxiv"
	"github.com/scholia-labs/scholia-cli/internal/connectors/pubmed"
	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
	"github.com/scholia-labs/scholia-cli/internal/core/services"
	"github.com/scholia-labs/scholia-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.New(false)

	configStore, err := file.NewConfigStore(os.Getenv("SCHOLIA_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settings := services.NewSettings(configStore)
	current := settings.Current()

	var splitter driven.SentenceSplitter
	switch current.Splitter {
	case domain.SplitterLinguistic:
		splitter = segment.NewLinguistic()
	default:
		splitter = segment.NewSimple()
	}

	chunker := services.NewChunker(splitter,
		services.WithChunkSize(current.ChunkSize),
		services.WithChunkOverlap(current.ChunkOverlap),
	)

	passageStore := memory.NewPassageStore()
	engine := services.NewRetrievalEngine(passageStore, chunker, log)

	articleStore, err := sqlite.NewStore(current.DataDir)
	if err != nil {
		return fmt.Errorf("opening article store: %w", err)
	}
	defer articleStore.Close()

	sources := []driven.ArticleSource{
		pubmed.NewConnector(log, pubmed.WithAPIKey(current.PubMed.APIKey)),
		biorxiv.NewConnector(log),
	}
	collector := services.NewCollector(sources, articleStore, log)

	evaluator := services.NewEvaluator(engine, current.TopK, log)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Retrieval:  engine,
		Collector:  collector,
		Evaluation: evaluator,
		Settings:   settings,
		Log:        log,
	})

	return cli.Execute()
}
