package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shoply/backend/internal/application/importapp"
	"github.com/shoply/backend/internal/infrastructure/config"
	"github.com/shoply/backend/internal/infrastructure/logger"
	"github.com/shoply/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		sheet   string
		dryRun  bool
		verbose bool
	)
	flag.StringVar(&sheet, "sheet", "", "worksheet name for Excel files (default: first sheet)")
	flag.BoolVar(&dryRun, "dry-run", false, "validate the file without writing anything")
	flag.BoolVar(&verbose, "verbose", false, "log every processed row")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: importer [flags] <file.csv|file.xlsx>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log, err := logger.New(&logger.Config{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open file", zap.String("path", path), zap.Error(err))
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Fatal("failed to stat file", zap.String("path", path), zap.Error(err))
	}
	if info.Size() > cfg.Import.MaxFileSize {
		log.Fatal("file exceeds the configured size limit",
			zap.Int64("size", info.Size()),
			zap.Int64("limit", cfg.Import.MaxFileSize))
	}

	storeRepo := persistence.NewGormStoreRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	service := importapp.NewProductImportService(storeRepo, productRepo, cfg.Import.MaxErrors, log)

	stats, err := service.ImportFile(context.Background(), file, filepath.Base(path), importapp.Options{
		Sheet:   sheet,
		DryRun:  dryRun,
		Verbose: verbose,
	})
	if err != nil {
		log.Fatal("import failed", zap.Error(err))
	}

	mode := "import"
	if dryRun {
		mode = "dry run"
	}
	log.Info("import finished",
		zap.String("mode", mode),
		zap.Int("processed", stats.Processed),
		zap.Int("created", stats.Created),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped),
		zap.Int("stores_created", stats.StoresCreated),
		zap.Int("errors", stats.TotalErrors),
	)

	for _, rowErr := range stats.Errors {
		fmt.Fprintf(os.Stderr, "  row %d: %s\n", rowErr.Row, rowErr.Message)
	}
	if stats.IsTruncated {
		fmt.Fprintf(os.Stderr, "  ... %d more errors not shown\n", stats.TotalErrors-len(stats.Errors))
	}

	if stats.HasErrors() {
		os.Exit(1)
	}
}
