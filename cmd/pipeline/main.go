package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"lingua-pipeline/internal/config"
	"lingua-pipeline/internal/document"
	"lingua-pipeline/internal/glossary"
	"lingua-pipeline/internal/inference"
	"lingua-pipeline/internal/logger"
	"lingua-pipeline/internal/pipeline"
	"lingua-pipeline/internal/store"
	"lingua-pipeline/internal/subtitle"
	"lingua-pipeline/internal/transcriber"
	"lingua-pipeline/internal/watcher"
	"lingua-pipeline/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	glossaryPath := flag.String("glossary", "", "extract a glossary from this document and exit")
	reportPath := flag.String("report", "", "write the glossary as a docx report to this path")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	client, err := inference.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if err != nil {
		log.Error(ctx, "Failed to create inference client: %v", err)
		os.Exit(1)
	}

	if *glossaryPath != "" {
		if err := runGlossary(ctx, cfg, client, log, *glossaryPath, *reportPath); err != nil {
			log.Error(ctx, "Glossary extraction failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := runPipeline(ctx, cfg, client, log); err != nil {
		log.Error(ctx, "Pipeline failed: %v", err)
		os.Exit(1)
	}
}

// runGlossary is the one-shot document mode: load, extract, print, and
// optionally write a docx report.
func runGlossary(ctx context.Context, cfg *config.Config, client inference.Client, log logger.Logger, docPath, reportPath string) error {
	text, err := document.LoadText(docPath)
	if err != nil {
		return err
	}

	extractor := glossary.New(cfg, client, log)
	terms, err := extractor.Extract(ctx, text)
	if err != nil {
		return err
	}

	log.Info(ctx, "Extracted %d terms from %s", len(terms), docPath)
	for _, t := range terms {
		fmt.Printf("%s\t%s\t%s\t%.2f\n", t.Korean, t.English, t.Vietnamese, t.Confidence)
	}

	if reportPath != "" {
		if err := glossary.WriteReport(terms, docPath, reportPath); err != nil {
			return err
		}
		log.Info(ctx, "Report written: %s", reportPath)
	}
	return nil
}

// runPipeline is the long-running watch mode: every media file dropped into
// the inbox is transcribed, translated to each target language, and
// serialized to SRT files.
func runPipeline(ctx context.Context, cfg *config.Config, client inference.Client, log logger.Logger) error {
	log.Info(ctx, "Subtitle pipeline starting on %s/%s (%d CPUs)",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	st, err := store.Open(cfg.Paths.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	exec := executor.New()
	tr := transcriber.New(cfg, exec, log)
	coord := pipeline.New(cfg, st, client, tr, log)

	handler := func(ctx context.Context, filePath string) error {
		media, err := st.RegisterMedia(ctx, filePath, cfg.Translation.SourceLanguage)
		if err != nil {
			return err
		}

		if err := coord.Transcribe(ctx, media.ID); err != nil {
			return err
		}
		if _, err := coord.Serialize(ctx, media.ID, media.SourceLanguage, subtitle.KindOriginal); err != nil {
			return err
		}

		for _, lang := range cfg.Translation.TargetLanguages {
			if err := coord.Translate(ctx, media.ID, lang); err != nil {
				return err
			}
			if _, err := coord.Serialize(ctx, media.ID, lang, subtitle.KindTranslated); err != nil {
				return err
			}
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Pipeline ready. Inbox: %s, targets: %v", cfg.Paths.Inbox, cfg.Translation.TargetLanguages)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	return nil
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Storage,
		cfg.Paths.Temp,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
