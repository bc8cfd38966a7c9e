package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio/internal/ai"
	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/mail"
	"portfolio/internal/model"
	redisClient "portfolio/internal/platform/redis"
	sqliteClient "portfolio/internal/platform/sqlite"
)

type App struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *gorm.DB
	Redis  *redis.Client

	// Collaborators the router hands to the services; tests swap in fakes.
	Completer app.Completer
	Sender    app.Sender

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	for _, dir := range []string{cfg.App.UploadDir, filepath.Dir(cfg.Log.File), filepath.Dir(cfg.Database.Path)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s failed: %w", dir, err)
		}
	}

	logger := logging.New(cfg.Log, cfg.App.Env)

	db, err := sqliteClient.New(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.BlogPost{}, &model.ChatMessage{}, &model.Note{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	var redisCli *redis.Client
	if cfg.Redis.Addr != "" {
		redisCli, err = redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("portfolio startup",
		zap.String("env", cfg.App.Env),
		zap.String("database", cfg.Database.Path),
		zap.Bool("redis", redisCli != nil),
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Redis:     redisCli,
		Completer: ai.NewClient(),
		Sender:    mail.New(cfg.Mail),
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return closeErr
}
