package report

import (
	"codeberg.org/seoradar/server/seoradar/reports"
	"codeberg.org/seoradar/server/seoradar/snapshots"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	router *gin.RouterGroup,
	svc *reports.Service,
	refresher *reports.Refresher,
	snapRepo *snapshots.Repository,
	refreshLimiter gin.HandlerFunc,
) {
	router.GET("/report", ReportHandler(svc))
	router.GET("/snapshots", HistoryHandler(snapRepo))

	// refresh hits the upstream sheet export, so it is rate limited
	router.POST("/refresh", refreshLimiter, RefreshHandler(refresher))
}
