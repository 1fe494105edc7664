package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/config"
	"github.com/nikol804/dotapost/internal/handler"
	"github.com/nikol804/dotapost/internal/infrastructure/database"
	"github.com/nikol804/dotapost/internal/logger"
	"github.com/nikol804/dotapost/internal/repository"
	"github.com/nikol804/dotapost/internal/repository/memory"
)

// backend is the storage the services run on.
type backend struct {
	name     string
	tx       repository.Transactor
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository
	actions  repository.ModerationRepository
	pinger   handler.Pinger

	// pool is nil for the memory backend.
	pool *pgxpool.Pool
}

func poolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
}

// openBackend connects the configured storage, migrating the schema first
// when DB_AUTO_MIGRATE is set.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("Using in-memory storage; data is lost on exit")
		store := memory.New()
		return &backend{
			name:     config.StorageMemory,
			tx:       store,
			users:    store.Users(),
			posts:    store.Posts(),
			comments: store.Comments(),
			likes:    store.Likes(),
			actions:  store.Moderation(),
			pinger:   store,
		}, nil
	}

	pc := poolConfig(cfg)
	if cfg.DBAutoMigrate {
		if err := database.MigrateUp(pc.URL()); err != nil {
			return nil, err
		}
		logger.Info("Database schema is up to date")
	}

	pool, err := database.NewPostgres(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return &backend{
		name:     config.StoragePostgres,
		tx:       repository.NewPostgresTransactor(pool),
		users:    repository.NewPostgresUserRepository(pool),
		posts:    repository.NewPostgresPostRepository(pool),
		comments: repository.NewPostgresCommentRepository(pool),
		likes:    repository.NewPostgresLikeRepository(pool),
		actions:  repository.NewPostgresModerationRepository(pool),
		pinger:   pool,
		pool:     pool,
	}, nil
}

// Close releases the database pool, if any.
func (b *backend) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
}
