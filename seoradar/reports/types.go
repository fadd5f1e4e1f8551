package reports

import (
	"time"

	"codeberg.org/seoradar/server/internal/filters"
	"codeberg.org/seoradar/server/internal/scoring"
	"codeberg.org/seoradar/server/internal/tabular"
	"codeberg.org/seoradar/server/seoradar/snapshots"
)

// how the report should be ranked
type SortMode string

const (
	SortRewritePriority   SortMode = "rewrite_priority"
	SortCVRPosition       SortMode = "cvr_position"
	SortImpressionRevenue SortMode = "impression_revenue"
	SortNone              SortMode = "none"
)

// reports whether the mode is one the engine knows how to rank by
func (m SortMode) Valid() bool {
	switch m {
	case SortRewritePriority, SortCVRPosition, SortImpressionRevenue, SortNone:
		return true
	}

	return false
}

// one report request: a sort mode plus optional strict filters. The engine is
// stateless; everything that used to be UI toggle state arrives here as
// explicit parameters.
type Request struct {
	Sort    SortMode
	Limit   int
	Filters []filters.Filter
}

// a derived table ready for rendering
type Report struct {
	Columns     []string         `json:"columns"`
	Rows        []tabular.Record `json:"rows"`
	SortedBy    SortMode         `json:"sorted_by"`
	TotalRows   int              `json:"total_rows"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// builds derived report tables from the latest ingested dataset
type Service struct {
	scoring  scoring.Config
	repo     *snapshots.Repository
	dataFile string
}
