package tabular

import "strings"

// canonical column names used throughout the engine
const (
	ColContentID      = "content_id"
	ColURL            = "url"
	ColTitle          = "title"
	ColCategory       = "category"
	ColKeyword        = "keyword"
	ColSessions7d     = "sessions_7d"
	ColPageViews7d    = "page_views_7d"
	ColSales7d        = "sales_7d"
	ColSales30d       = "sales_30d"
	ColConversions    = "cv"
	ColImpressions    = "imp"
	ColClicks         = "click"
	ColAvgPosition7d  = "avg_position_7d"
	ColAvgPosition30d = "avg_position_30d"
	ColLastModified   = "last_modified"
)

// derived columns appended by the scoring engine
const (
	ColGrowthRate             = "growth_rate"
	ColRewritePriority        = "rewrite_priority"
	ColCVRPositionScore       = "cvr_position_score"
	ColImpressionRevenueScore = "impression_revenue_score"
)

// one row of the metrics table: canonical column name -> raw cell value
type Record map[string]string

// a flat dataset snapshot: ordered header plus rows
type Table struct {
	Columns []string
	Rows    []Record
}

// returns the raw cell for a column, empty string when absent
func (r Record) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// returns the cell parsed as a number; ok is false when absent or unparseable
func (r Record) Num(col string) (float64, bool) {
	return ParseNumeric(r.Get(col))
}

// returns the cell parsed as a number, or def when absent/unparseable
func (r Record) NumOr(col string, def float64) float64 {
	if v, ok := r.Num(col); ok {
		return v
	}

	return def
}

// returns the category cell split into individual tags
func (r Record) Categories() []string {
	raw := r.Get(ColCategory)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))

	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}

// returns a shallow copy of the record
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// reports whether the table has a column with the given canonical name
func (t Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}

	return false
}
