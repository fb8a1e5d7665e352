package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/contentcraft/contentcraft/backend/api/internal/config"
	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
	"github.com/contentcraft/contentcraft/backend/api/internal/database"
	"github.com/contentcraft/contentcraft/backend/api/internal/seed"
	"github.com/contentcraft/contentcraft/backend/api/internal/storage"
	"github.com/contentcraft/contentcraft/backend/api/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	fixturesPath := flag.String("fixtures", "", "read fixtures from a local JSON file instead of the built-in set")
	fixturesObject := flag.String("fixtures-object", "", "read fixtures from this object key in the MinIO bucket")
	publish := flag.String("publish", "", "upload the selected fixtures to this MinIO object key and exit")
	dryRun := flag.Bool("dry-run", false, "validate fixtures and report counts without writing")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var minioStore *storage.MinIOStorage
	if *fixturesObject != "" || *publish != "" {
		minioStore, err = storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Fatalf("failed to initialize MinIO: %v", err)
		}
	}

	var fx *seed.Fixtures
	raw := seed.DefaultFixturesJSON()
	switch {
	case *fixturesPath != "":
		fs := &storage.FileStorage{Dir: filepath.Dir(*fixturesPath)}
		fx, err = seed.Load(ctx, fs, filepath.Base(*fixturesPath))
		if err == nil {
			raw, err = os.ReadFile(*fixturesPath)
		}
	case *fixturesObject != "":
		fx, err = seed.Load(ctx, minioStore, *fixturesObject)
	default:
		fx, err = seed.Default()
	}
	if err != nil {
		logger.Fatalf("failed to load fixtures: %v", err)
	}

	if *publish != "" {
		if *fixturesObject != "" {
			logger.Fatalf("-publish re-uploads local fixtures; drop -fixtures-object")
		}
		if err := minioStore.Put(ctx, *publish, bytes.NewReader(raw), int64(len(raw)), "application/json"); err != nil {
			logger.Fatalf("failed to publish fixtures: %v", err)
		}
		logger.Infof("published fixtures to %s/%s", cfg.MinIO.Bucket, *publish)
		return
	}

	cols, client := openCollections(ctx, cfg, *dryRun)
	if client != nil {
		defer func() { _ = client.Disconnect(context.Background()) }()
	}

	res, err := seed.Run(ctx, cols, fx, seed.Options{DryRun: *dryRun})
	if err != nil {
		logger.Errorf("Error seeding database: %v", err)
		os.Exit(1)
	}
	logger.Infof("Database seeding completed: portfolio=%d testimonials=%d stats=%d cleared=%v",
		res.Portfolio, res.Testimonials, res.Stats, res.Cleared)
}

// openCollections connects to MongoDB. A dry run without MONGODB_URI seeds
// throwaway in-memory collections.
func openCollections(ctx context.Context, cfg *config.Config, dryRun bool) (seed.Collections, *mongo.Client) {
	if cfg.MongoDB.URI == "" {
		if !dryRun {
			logger.Fatalf("MONGODB_URI (or MONGO_URL) is required to seed")
		}
		return seed.Collections{
			Portfolio:    repository.NewMemoryCollection[content.PortfolioItem](content.CollectionPortfolio),
			Testimonials: repository.NewMemoryCollection[content.Testimonial](content.CollectionTestimonials),
			Stats:        repository.NewMemoryCollection[content.Stats](content.CollectionStats),
		}, nil
	}
	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	db := client.Database(cfg.MongoDB.Database)
	return seed.Collections{
		Portfolio:    repository.NewMongoCollection[content.PortfolioItem](db.Collection(content.CollectionPortfolio)),
		Testimonials: repository.NewMongoCollection[content.Testimonial](db.Collection(content.CollectionTestimonials)),
		Stats:        repository.NewMongoCollection[content.Stats](db.Collection(content.CollectionStats)),
	}, client
}
