package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/oksasatya/party-planner/config"
	"github.com/oksasatya/party-planner/internal/domain/entity"
	"github.com/oksasatya/party-planner/internal/infrastructure/mongodb"
)

// Seeds the catalog collections from JSON fixtures. Each collection is
// wiped and refilled, so running it twice is safe.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDBName)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	for _, name := range mongodb.CatalogCollections {
		path := filepath.Join(cfg.SeedDataDir, name+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}

		var items []entity.CatalogItem
		if err := json.Unmarshal(raw, &items); err != nil {
			log.Fatalf("failed to parse %s: %v", path, err)
		}

		col := db.Collection(name)
		if _, err := col.DeleteMany(ctx, map[string]any{}); err != nil {
			log.Fatalf("failed to clear %s: %v", name, err)
		}

		docs := make([]any, 0, len(items))
		for i := range items {
			docs = append(docs, items[i])
		}
		if len(docs) > 0 {
			if _, err := col.InsertMany(ctx, docs); err != nil {
				log.Fatalf("failed to seed %s: %v", name, err)
			}
		}
		fmt.Printf("seeded %s: %d documents\n", name, len(docs))
	}
}
