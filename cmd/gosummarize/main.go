package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosummarize/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	var (
		inputPath   string
		outputPath  string
		method      string
		sentences   int
		targetWords int
		writeReport bool
		enablePDF   bool
		forceSimple bool
		dryRun      bool
		verbose     bool
		configPath  string
	)

	flag.StringVar(&inputPath, "input", os.Getenv("SUMMARY_INPUT"), "Path to the document to summarize (.pdf, .html, or plain text)")
	flag.StringVar(&outputPath, "output", "", "Path to write the summary (default summary.txt)")
	flag.StringVar(&method, "method", "", "Summarization method: extractive or budgeted (default extractive)")
	flag.IntVar(&sentences, "sentences", 0, "Extractive: number of sentences to keep (default 7)")
	flag.IntVar(&targetWords, "words", 0, "Budgeted: target word count (default 250)")
	flag.BoolVar(&writeReport, "report", false, "Also write a timestamped text report next to the summary")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also render the report as PDF")
	flag.BoolVar(&forceSimple, "simple", false, "Force the simple regex tokenizer even when the linguistic backend is available")
	flag.BoolVar(&dryRun, "dry-run", false, "Extract and show statistics without summarizing")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.StringVar(&configPath, "config", os.Getenv("SUMMARY_CONFIG"), "Path to a YAML or JSON config file")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		Method:      method,
		Sentences:   sentences,
		TargetWords: targetWords,
		WriteReport: writeReport,
		EnablePDF:   enablePDF,
		ForceSimple: forceSimple,
		DryRun:      dryRun,
		Verbose:     verbose,
	}

	// Precedence: flags, then config file, then environment.
	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			log.Error().Err(err).Msg("config file")
			os.Exit(1)
		}
		app.MergeFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: the two caller-distinguishable document
		// conditions map to 2, everything else to 1.
		if errors.Is(err, app.ErrExtraction) || errors.Is(err, app.ErrEmptyDocument) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return a.Run(context.Background())
}
