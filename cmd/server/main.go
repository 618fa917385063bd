package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	fiberadapter "github.com/Mayinja6/mission-games-bh-server/adapters/fiber"
	pgxadapter "github.com/Mayinja6/mission-games-bh-server/adapters/pgx"
	"github.com/Mayinja6/mission-games-bh-server/config"
	"github.com/Mayinja6/mission-games-bh-server/core"
	"github.com/Mayinja6/mission-games-bh-server/pkg/crypto"
)

func main() {
	// .env is optional; the real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	ctx := context.Background()

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("sql.Open: %v", err)
	}
	if err := pgxadapter.RunMigrations(ctx, migrationDB); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	migrationDB.Close()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("pgxpool.New: %v", err)
	}
	defer pool.Close()

	store := pgxadapter.New(pool)
	codec := crypto.NewSessionCodec([]byte(cfg.JWTSecret), cfg.TokenTTL)
	auth := core.NewAuthService(store, crypto.NewBcrypt(), codec)

	app := fiber.New(fiber.Config{
		ErrorHandler: fiberadapter.NewErrorHandler(cfg.Development()),
	})
	app.Use(logger.New())

	fiberadapter.New(auth, store, codec, codec.TTL()).RegisterRoutes(app)

	log.Printf("Server listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("app.Listen: %v", err)
	}
}
