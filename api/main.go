package main

import (
	"context"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	_ "github.com/gothyxan/storefront/docs"
	"github.com/gothyxan/storefront/internal/cart"
	"github.com/gothyxan/storefront/internal/catalog"
	"github.com/gothyxan/storefront/internal/config"
	api "github.com/gothyxan/storefront/internal/http"
	"github.com/gothyxan/storefront/internal/http/handlers"
	"github.com/gothyxan/storefront/internal/http/ratelimit"
	"github.com/gothyxan/storefront/internal/localkv"
	"github.com/gothyxan/storefront/internal/redissvc"
	"github.com/gothyxan/storefront/internal/repo"
)

// @title Gothyxan Storefront API
// @version 1.0
// @description REST API for the Gothyxan storefront: product catalog, shopping cart and admin product management.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	if cfg.Environment == "production" {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	} else {
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	}

	ctx := context.Background()

	kv, err := localkv.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open local store")
	}
	productCatalog := catalog.New(repo.NewLocalProductRepository(kv))

	if cfg.FirestoreProject != "" {
		remote, actions, err := connectRemote(ctx, cfg)
		if err != nil {
			log.Warn().Err(err).Msg("remote backend unavailable, running local-only")
		} else {
			productCatalog.SetRemote(remote)
			handlers.SetActionLog(actions)
			log.Info().Str("project", cfg.FirestoreProject).Msg("remote backend attached")
		}
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("could not connect to Redis, strike tracking disabled")
		} else {
			defer rdb.Close()
			ratelimit.SetStrikeTracker(redissvc.NewRedisService(rdb))
		}
	}

	go ratelimit.StartVisitorCleanupLoop()

	handlers.SetCatalog(productCatalog)
	handlers.SetCartStore(cart.NewStore(kv))

	r := api.NewRouter()
	log.Info().Str("addr", cfg.Addr).Msg("storefront server running")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func connectRemote(ctx context.Context, cfg config.Config) (*repo.FirestoreProductRepository, *repo.FirestoreActionLog, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	fs, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		return nil, nil, err
	}

	gcs, err := storage.NewClient(ctx, opts...)
	if err != nil {
		fs.Close()
		return nil, nil, err
	}

	assets := repo.NewGCSAssetStore(gcs, cfg.StorageBucket)
	return repo.NewFirestoreProductRepository(fs, assets), repo.NewFirestoreActionLog(fs), nil
}
