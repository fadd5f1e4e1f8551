package main

import (
	"time"

	"codeberg.org/seoradar/server/api/rest/health"
	"codeberg.org/seoradar/server/api/rest/report"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// refreshes hit the upstream sheet export, keep them rare
var refreshRate = limiter.Rate{Period: time.Minute, Limit: 6}

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	refreshLimiter := mgin.NewMiddleware(limiter.New(memory.NewStore(), refreshRate))

	router.GET("/health", health.Handler)

	// browser-facing HTML table view
	router.GET("/report", report.PageHandler(server.reports))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		report.RegisterRoutes(v1, server.reports, server.refresher, server.snapRepo, refreshLimiter)
	}
}
