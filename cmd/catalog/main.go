package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/liao/chat-archiver/internal/catalog"
	"github.com/liao/chat-archiver/internal/config"
)

func main() {
	configPath := flag.String("config", "", "config file path (optional)")
	input := flag.String("input", "", "model catalog JSON (overrides catalog.input)")
	outputDir := flag.String("output", "", "output directory (overrides catalog.output_dir)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Catalog.Input = *input
	}
	if *outputDir != "" {
		cfg.Catalog.OutputDir = *outputDir
	}

	written, err := catalog.Generate(afero.NewOsFs(), cfg.Catalog.Input, cfg.Catalog.OutputDir)
	if err != nil {
		slog.Error("generate catalog artifacts failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("All files have been processed and zipped into %s\n", written[len(written)-1])
}
