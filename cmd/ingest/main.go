package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/openaudit/internal/config"
	"github.com/MrJamesThe3rd/openaudit/internal/database"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest/extract"
	ingestStore "github.com/MrJamesThe3rd/openaudit/internal/ingest/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		file      = flag.String("file", "", "path to the extract (.csv, .tsv or .xlsx)")
		batchSize = flag.Int("batch-size", cfg.Ingest.BatchSize, "transactions per committed batch")
		sheet     = flag.String("sheet", "", "worksheet to read from an .xlsx extract (default: first sheet)")
		verbose   = flag.Bool("v", false, "log skipped rows")
	)

	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *batchSize <= 0 {
		slog.Error("invalid batch size", "batch_size", *batchSize)
		os.Exit(2)
	}

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := run(cfg, *file, *sheet, *batchSize); err != nil {
		slog.Error("ingestion failed", "file", *file, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, path, sheet string, batchSize int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(cfg.ConnectionString()); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	f, err := extract.Open(path, sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	summary, err := ingest.NewService(ingestStore.New(db), batchSize).Run(ctx, f)
	if summary != nil {
		printSummary(summary)
	}

	if err != nil {
		if errors.Is(err, ingest.ErrRunInProgress) {
			return errors.New("another ingestion run is in progress")
		}

		return err
	}

	return nil
}

func printSummary(s *ingest.Summary) {
	fmt.Printf("Run:            %s\n", s.RunID)
	fmt.Printf("Rows read:      %d\n", s.Rows)
	fmt.Printf("Rows skipped:   %d\n", s.Skipped)
	fmt.Printf("LGUs touched:   %d (%d new)\n", s.LGUs, s.LGUsCreated)
	fmt.Printf("Transactions:   %d\n", s.Transactions)
	fmt.Printf("Batches:        %d\n", s.Batches)
}
