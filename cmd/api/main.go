package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hbnb/hbnb-api/internal/api"
	"github.com/hbnb/hbnb-api/internal/core/ports"
	"github.com/hbnb/hbnb-api/internal/core/service"
	"github.com/hbnb/hbnb-api/internal/infrastructure/config"
	"github.com/hbnb/hbnb-api/internal/infrastructure/db/memory"
	"github.com/hbnb/hbnb-api/internal/infrastructure/db/mysql"
	"github.com/hbnb/hbnb-api/internal/infrastructure/db/redis"
	"github.com/hbnb/hbnb-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	// --- Storage ---
	var (
		db        *sql.DB
		users     ports.UserRepository
		places    ports.PlaceRepository
		amenities ports.AmenityRepository
		reviews   ports.ReviewRepository
	)
	switch cfg.Storage {
	case "mysql":
		db, err = mysql.Open(ctx, mysql.Config{
			User:     cfg.MySQL.User,
			Password: cfg.MySQL.Password,
			Host:     cfg.MySQL.Host,
			Port:     cfg.MySQL.Port,
			Database: cfg.MySQL.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to mysql")
		}
		defer db.Close()

		if err := mysql.EnsureSchema(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("ensuring mysql schema")
		}

		users = mysql.NewUserRepository(db)
		places = mysql.NewPlaceRepository(db)
		amenities = mysql.NewAmenityRepository(db)
		reviews = mysql.NewReviewRepository(db)
		log.Info().Str("database", cfg.MySQL.Database).Msg("using mysql storage")
	case "memory":
		users = memory.NewUserRepository()
		places = memory.NewPlaceRepository()
		amenities = memory.NewAmenityRepository()
		reviews = memory.NewReviewRepository()
		log.Info().Msg("using in-memory storage")
	default:
		log.Fatal().Str("storage", cfg.Storage).Msg("unknown storage backend")
	}

	// --- Listing cache (optional) ---
	var (
		rdb   *goredis.Client
		cache *redis.ListingCache
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, listing cache disabled")
		} else {
			defer rdb.Close()
			cache = redis.NewListingCache(rdb, cfg.Redis.CacheTTL)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("listing cache enabled")
		}
	}

	facade := service.NewFacade(users, places, amenities, reviews, cfg.JWTSecret, cfg.JWTTTL, log)

	e := api.NewRouter(api.RouterConfig{
		Facade:    facade,
		JWTSecret: cfg.JWTSecret,
		DB:        db,
		Redis:     rdb,
		Cache:     cache,
		Logger:    log,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
