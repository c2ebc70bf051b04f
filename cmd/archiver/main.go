package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/afero"

	"github.com/liao/chat-archiver/internal/archive"
	"github.com/liao/chat-archiver/internal/config"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	mode := flag.String("mode", "sync", "run mode: backup, sync, html")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.Log.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fs := afero.NewOsFs()

	var report *archive.Report
	switch *mode {
	case "backup":
		if err := cfg.Backup.Validate(); err != nil {
			slog.Error("invalid config", "error", err)
			os.Exit(1)
		}
		slog.Info("backing up transcripts", "source", cfg.Backup.SourceDir, "dest", cfg.Backup.DestDir)
		report, err = archive.Backup(ctx, fs, cfg.Backup, nil)
	case "sync", "html":
		validate := cfg.Sync.Validate
		if *mode == "html" {
			validate = cfg.Sync.ValidateHTML
		}
		if err := validate(); err != nil {
			slog.Error("invalid config", "error", err)
			os.Exit(1)
		}
		slog.Info("syncing transcripts", "source", cfg.Sync.SourceDir, "html_source", cfg.Sync.HTMLSourceDir, "dest", cfg.Sync.DestDir)
		if *mode == "html" {
			report, err = archive.MoveHTML(ctx, fs, cfg.Sync, nil)
		} else {
			report, err = archive.Sync(ctx, fs, cfg.Sync, nil)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: archiver -config <file> -mode backup|sync|html\n")
		os.Exit(2)
	}
	if err != nil {
		slog.Error("run failed", "mode", *mode, "error", err)
		os.Exit(1)
	}

	slog.Info("done", "mode", *mode, "processed", len(report.Processed), "skipped", len(report.Skipped))
}

func setupLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l})))
}
