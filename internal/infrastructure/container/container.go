// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nutriveda/planner/internal/application/catalogsvc"
	"github.com/nutriveda/planner/internal/application/chart"
	"github.com/nutriveda/planner/internal/application/patientsvc"
	"github.com/nutriveda/planner/internal/application/planner"
	"github.com/nutriveda/planner/internal/infrastructure/ai/openai"
	"github.com/nutriveda/planner/internal/infrastructure/config"
	"github.com/nutriveda/planner/internal/infrastructure/http/server"
	gormRepo "github.com/nutriveda/planner/internal/infrastructure/persistence/gorm"
	"github.com/nutriveda/planner/internal/infrastructure/persistence/memory"
	redisRepo "github.com/nutriveda/planner/internal/infrastructure/persistence/redis"
	"github.com/nutriveda/planner/internal/ports/outbound"
	"github.com/nutriveda/planner/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	AIModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection
var DatabaseModule = fx.Provide(
	gormRepo.NewDatabase,
)

// CacheModule provides the plan cache, Redis when enabled and in-memory
// otherwise.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if !cfg.Redis.Enabled {
			log.Info("Using in-memory plan cache")
			return memory.NewCacheRepository(), nil
		}

		client, err := redisRepo.NewClient(cfg.Redis, cfg.GetRedisAddr())
		if err != nil {
			return nil, err
		}
		log.Info("Connected to Redis", zap.String("addr", cfg.GetRedisAddr()))
		return redisRepo.NewCacheRepository(client, log), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewPatientRepository,
	gormRepo.NewFoodRepository,
	gormRepo.NewRecipeRepository,
	gormRepo.NewChartRepository,
)

// AIModule provides the generative plan client. A nil service means the
// planner always takes the deterministic path.
var AIModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.AIService {
		if !cfg.AI.Enabled {
			log.Info("Generative planning disabled, deterministic composer only")
			return nil
		}
		return openai.NewClient(cfg.AI, log)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	patientsvc.NewService,
	catalogsvc.NewService,
	func(cfg *config.Config) planner.Config {
		return planner.Config{
			DefaultDays:   cfg.Planner.DefaultDays,
			MaxDays:       cfg.Planner.MaxDays,
			CacheTTL:      cfg.Planner.PlanCacheTTL,
			DefaultSeason: cfg.Planner.DefaultSeason,
		}
	},
	planner.NewService,
	chart.NewService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule registers lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
