// Command migrate creates the schema and optionally seeds the default
// catalog and content, for deployments that do not want the server to
// touch the schema at startup.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	storeapp "github.com/jkhopkins39/sxnctuary/internal/application/store"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/config"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/logger"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		seed     bool
		logLevel string
	)
	flag.BoolVar(&seed, "seed", false, "Seed default products and content after migrating")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Schema migrated", zap.String("driver", cfg.Database.Driver))

	if !seed {
		return
	}

	ctx := context.Background()
	productService := storeapp.NewProductService(persistence.NewGormProductRepository(db.DB))
	contentService := storeapp.NewContentService(persistence.NewGormContentRepository(db.DB))

	seeded, err := productService.Seed(ctx)
	if err != nil {
		log.Fatal("Product seed failed", zap.Error(err))
	}
	log.Info("Product seed complete", zap.Bool("inserted", seeded))

	seeded, err = contentService.Seed(ctx)
	if err != nil {
		log.Fatal("Content seed failed", zap.Error(err))
	}
	log.Info("Content seed complete", zap.Bool("inserted", seeded))
}
