package main

import (
	"codeberg.org/seoradar/server/internal/config"
	"codeberg.org/seoradar/server/seoradar/reports"
	"codeberg.org/seoradar/server/seoradar/snapshots"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db        *pgxpool.Pool
	config    *config.Config
	snapRepo  *snapshots.Repository
	reports   *reports.Service
	refresher *reports.Refresher
	router    *gin.Engine
}
