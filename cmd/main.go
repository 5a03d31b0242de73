package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	fileAdapter "github.com/klimenkoOleg/top-words-go/internal/adapter/file"
	"github.com/klimenkoOleg/top-words-go/internal/config"
	"github.com/klimenkoOleg/top-words-go/internal/domain/wordfreq"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	storageOpts := []fileAdapter.StorageOption{
		fileAdapter.WithEncoding(cfg.Encoding),
		fileAdapter.WithMaxLineSize(cfg.MaxLineSize),
	}
	if cfg.Progress {
		storageOpts = append(storageOpts, fileAdapter.WithProgress(os.Stderr))
	}
	service := wordfreq.NewService(fileAdapter.NewStorage(storageOpts...), cfg.AnalyzerOptions()...)

	result, err := service.Analyze(ctx, cfg.Input, cfg.K, cfg.MinLength)
	if err != nil {
		if result == nil || !errors.Is(err, wordfreq.ErrInputRead) {
			return err
		}
		log.Printf("reporting partial result: %v", err)
	}

	if cfg.Output == "" {
		return wordfreq.WriteReport(os.Stdout, result, cfg.Format)
	}

	return service.Export(ctx, result, cfg.Output, cfg.Format)
}
