package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/seoradar/server/internal/config"
	"codeberg.org/seoradar/server/internal/ingest"
	"codeberg.org/seoradar/server/seoradar/reports"
	"codeberg.org/seoradar/server/seoradar/snapshots"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// a reporting pass is read-mostly and snapshots are written rarely,
	// so a small pool is plenty
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	snapRepo := snapshots.NewRepository(db)
	reportSvc := reports.NewService(cfg.Scoring, snapRepo, cfg.DataFile)

	fetcher := ingest.NewFetcher(cfg.SheetCSVURL)
	refresher := reports.NewRefresher(fetcher, snapRepo, cfg.DataFile)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.LoadHTMLGlob("web/templates/*.tmpl")

	server := &Server{
		db:        db,
		config:    cfg,
		snapRepo:  snapRepo,
		reports:   reportSvc,
		refresher: refresher,
		router:    router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
