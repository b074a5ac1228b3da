package main

import (
	"context"

	"ijuruhub/internal/migrations"
	"ijuruhub/pkg/config"

	"github.com/joho/godotenv"
)

const ServiceName = "ijuruhub-migrate"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.ConnectMongo()
	defer cfg.GracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	if err := migrations.Run(ctx, cfg); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	cfg.Log.Info("Migration completed")
}
