package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/somahsap/site-core/internal/config"
	"github.com/somahsap/site-core/internal/middleware"
	"github.com/somahsap/site-core/internal/pkg/blob"
	"github.com/somahsap/site-core/internal/pkg/secrets"
)

var processStart = time.Now()

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	logger *zap.Logger
}

// New initializes the application: secrets → stores → routes.
func New(ctx context.Context, logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	provider, err := buildSecretsProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("secrets: %w", err)
	}

	contentStore, err := buildContentStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("content store: %w", err)
	}

	rdb, err := buildRedis(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(buildCORSConfig(cfg)))

	app := &App{cfg: cfg, router: router, logger: logger}
	app.registerRoutes(provider, contentStore, rdb)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

func buildSecretsProvider(ctx context.Context, cfg *config.AppConfig) (secrets.Provider, error) {
	if cfg.Admin.Provider == "ssm" {
		ssm, err := secrets.NewSSM(ctx, cfg.ContentStore.Region, cfg.Admin.SSMAppID, cfg.Admin.SSMBranch)
		if err != nil {
			return nil, err
		}
		return secrets.NewCached(ssm, time.Duration(cfg.Admin.SSMCacheTTL)*time.Second), nil
	}
	return secrets.Static{Password: cfg.Admin.Password, Secret: cfg.Admin.Secret}, nil
}

func buildContentStore(ctx context.Context, cfg *config.AppConfig) (blob.Store, error) {
	if cfg.ContentStore.Backend == "s3" {
		return blob.NewS3Object(ctx, blob.S3Options{
			Region:          cfg.ContentStore.Region,
			Bucket:          cfg.ContentStore.Bucket,
			Key:             cfg.ContentStore.Key,
			Endpoint:        cfg.ContentStore.Endpoint,
			AccessKeyID:     cfg.ContentStore.AccessKeyID,
			SecretAccessKey: cfg.ContentStore.SecretAccessKey,
		})
	}
	return blob.NewFile(filepath.Join(cfg.Paths.Data, "content.json")), nil
}

// buildRedis connects when a URL is configured; without one the features that
// want Redis degrade to pass-through.
func buildRedis(redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func buildCORSConfig(cfg *config.AppConfig) cors.Config {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	return corsConfig
}
