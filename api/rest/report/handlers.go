package report

import (
	"errors"
	"net/http"

	apierrors "codeberg.org/seoradar/server/internal/errors"
	"codeberg.org/seoradar/server/seoradar/reports"
	"codeberg.org/seoradar/server/seoradar/snapshots"
	"github.com/gin-gonic/gin"
)

// ReportHandler returns the derived report table as JSON
func ReportHandler(svc *reports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := parseRequest(c)
		if err != nil {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}

		rep, err := svc.Build(c.Request.Context(), req)
		if errors.Is(err, reports.ErrNoData) {
			apierrors.NoData(c)
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to build report", err)
			return
		}

		c.JSON(http.StatusOK, rep)
	}
}

// PageHandler renders the report as an HTML table
func PageHandler(svc *reports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := parseRequest(c)
		if err != nil {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}

		rep, err := svc.Build(c.Request.Context(), req)
		if errors.Is(err, reports.ErrNoData) {
			c.HTML(http.StatusOK, "report.html.tmpl", gin.H{
				"Title":  "SEO Radar",
				"Empty":  true,
				"Report": nil,
			})
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to build report", err)
			return
		}

		c.HTML(http.StatusOK, "report.html.tmpl", gin.H{
			"Title":  "SEO Radar",
			"Empty":  len(rep.Rows) == 0,
			"Report": rep,
		})
	}
}

// RefreshHandler triggers a full re-ingestion of the upstream dataset
func RefreshHandler(refresher *reports.Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := refresher.Refresh(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to refresh dataset", err)
			return
		}

		c.JSON(http.StatusOK, RefreshResponse{
			SnapshotID: snap.ID,
			RowCount:   snap.RowCount,
			Message:    "dataset refreshed",
		})
	}
}

// HistoryHandler lists stored snapshot metadata, newest first
func HistoryHandler(repo *snapshots.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		snaps, err := repo.History(c.Request.Context(), 0)
		if err != nil {
			apierrors.InternalError(c, "failed to list snapshots", err)
			return
		}

		if snaps == nil {
			snaps = []snapshots.Snapshot{}
		}

		c.JSON(http.StatusOK, gin.H{"snapshots": snaps})
	}
}
