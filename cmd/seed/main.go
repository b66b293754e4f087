package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bistro/internal/cache"
	"bistro/internal/config"
	"bistro/internal/db"
	"bistro/internal/logging"
	"bistro/internal/model"
	"bistro/internal/repository"
	"bistro/internal/service"
)

func main() {
	menuSource := flag.String("menu", "", "menu items JSON file path or http(s) URL")
	reviewSource := flag.String("reviews", "", "reviews JSON file path or http(s) URL")
	reset := flag.Bool("reset", os.Getenv("RESET_DB") == "true", "drop the menu and reviews collections first")
	flag.Parse()

	cfg := config.Load()
	log, err := logging.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if *menuSource == "" && *reviewSource == "" {
		log.Fatal("nothing to seed: pass -menu and/or -reviews")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("connect to database", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info("connected to database", zap.String("database", cfg.MongoDatabase))

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Warn("index reconciliation incomplete", zap.Error(err))
	}

	if *reset {
		log.Info("RESET_DB requested, dropping seeded collections")
		for _, name := range []string{db.MenuCollection, db.ReviewsCollection} {
			if err := database.Collection(name).Drop(ctx); err != nil {
				log.Warn("drop collection", zap.String("collection", name), zap.Error(err))
			}
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	seeder := service.NewSeedService(
		repository.NewMenuRepository(database),
		repository.NewReviewRepository(database),
		cacheClient,
		log,
	)

	if *menuSource != "" {
		var items []model.MenuItem
		if err := load(ctx, *menuSource, &items); err != nil {
			log.Fatal("load menu", zap.String("source", *menuSource), zap.Error(err))
		}
		if !*reset {
			warnIfPopulated(ctx, log, database, db.MenuCollection)
		}
		res, err := seeder.SeedMenu(ctx, items)
		if err != nil {
			log.Fatal("seed menu", zap.Error(err))
		}
		log.Info("menu seeded", zap.Int("inserted", res.Inserted), zap.Int("skipped", res.Skipped))
	}

	if *reviewSource != "" {
		var reviews []model.Review
		if err := load(ctx, *reviewSource, &reviews); err != nil {
			log.Fatal("load reviews", zap.String("source", *reviewSource), zap.Error(err))
		}
		res, err := seeder.SeedReviews(ctx, reviews)
		if err != nil {
			log.Fatal("seed reviews", zap.Error(err))
		}
		log.Info("reviews seeded", zap.Int("inserted", res.Inserted), zap.Int("skipped", res.Skipped))
	}

	log.Info("seed completed")
}

// load decodes a JSON array from a local file or an http(s) URL.
func load(ctx context.Context, source string, dst interface{}) error {
	var r io.Reader
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("source returned status code: %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

func warnIfPopulated(ctx context.Context, log *zap.Logger, database *mongo.Database, collection string) {
	n, err := database.Collection(collection).EstimatedDocumentCount(ctx)
	if err == nil && n > 0 {
		log.Warn("collection already has documents, seeding appends", zap.String("collection", collection), zap.Int64("count", n))
	}
}
