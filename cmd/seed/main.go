package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/repo"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/import_catalog"
	"github.com/light-bringer/smartcup-service/internal/pkg/committer"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

// Configuration for the catalog seed job
type Config struct {
	SpannerDB string
	CSVPath   string
	Dataset   string
	BatchSize int
	Replace   bool
	DryRun    bool
}

func main() {
	// Parse command-line flags
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", os.Getenv("SPANNER_DATABASE"), "Spanner database (format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.StringVar(&config.CSVPath, "csv", "data/smartcup.csv", "CSV file to import")
	flag.StringVar(&config.Dataset, "dataset", "smartcup_final_6", "Dataset name the rows are stored under")
	flag.IntVar(&config.BatchSize, "batch", 1000, "Mutations per commit")
	flag.BoolVar(&config.Replace, "replace", true, "Delete existing rows of the dataset first")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Parse and summarize the CSV without writing")
	flag.Parse()

	ctx := context.Background()

	if err := seed(ctx, config); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed completed successfully")
}

func seed(ctx context.Context, config Config) error {
	source := repo.NewCSVSource(config.CSVPath)

	log.Printf("Starting catalog import...")
	log.Printf("  Source: %s", config.CSVPath)
	log.Printf("  Dataset: %s", config.Dataset)
	log.Printf("  Replace: %v", config.Replace)
	log.Printf("  Dry run: %v", config.DryRun)

	if config.DryRun {
		return dryRunSeed(ctx, source)
	}

	if config.SpannerDB == "" {
		return fmt.Errorf("-database flag or SPANNER_DATABASE is required")
	}

	// Create Spanner client
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	logger := telemetry.NewLogger(slog.LevelInfo)
	interactor := import_catalog.NewInteractor(source, repo.NewBeverageRepo(), committer.NewCommitter(client), logger)

	resp, err := interactor.Execute(ctx, &import_catalog.Request{
		Dataset:   config.Dataset,
		Replace:   config.Replace,
		BatchSize: config.BatchSize,
	})
	if err != nil {
		return err
	}

	log.Printf("Imported %d items (%d mutations)", resp.Items, resp.Mutations)
	return nil
}

func dryRunSeed(ctx context.Context, source contracts.CatalogSource) error {
	items, err := source.LoadItems(ctx)
	if err != nil {
		return err
	}

	perCafe := make(map[string]int)
	for _, item := range items {
		perCafe[item.Cafe]++
	}
	cafes := make([]string, 0, len(perCafe))
	for cafe := range perCafe {
		cafes = append(cafes, cafe)
	}
	sort.Strings(cafes)

	log.Printf("Would import %d items:", len(items))
	for _, cafe := range cafes {
		log.Printf("  %s: %d", cafe, perCafe[cafe])
	}
	return nil
}
