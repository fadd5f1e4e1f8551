package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"codeberg.org/seoradar/server/internal/filters"
	"codeberg.org/seoradar/server/internal/tabular"
	"codeberg.org/seoradar/server/seoradar/reports"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 0 // unlimited
	maxLimit     = 5000
)

// translates query parameters into an engine request. Filter parameters are
// repeatable and use a column:value form:
//
//	?le=avg_position_7d:30          column <= 30
//	?ge=imp:100                     column >= 100
//	?between=avg_position_7d:10-30  closed range
//	?older_than_months=6            last_modified older than 6 months
func parseRequest(c *gin.Context) (reports.Request, error) {
	req := reports.Request{Sort: reports.SortRewritePriority, Limit: defaultLimit}

	if raw, ok := c.GetQuery("sort"); ok {
		mode := reports.SortMode(raw)
		if !mode.Valid() {
			return req, fmt.Errorf("unknown sort mode %q", raw)
		}

		req.Sort = mode
	}

	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 || limit > maxLimit {
			return req, fmt.Errorf("invalid limit %q", raw)
		}

		req.Limit = limit
	}

	for _, raw := range c.QueryArray("le") {
		col, v, err := parseThreshold(raw)
		if err != nil {
			return req, err
		}

		req.Filters = append(req.Filters, filters.Max(col, v))
	}

	for _, raw := range c.QueryArray("ge") {
		col, v, err := parseThreshold(raw)
		if err != nil {
			return req, err
		}

		req.Filters = append(req.Filters, filters.Min(col, v))
	}

	for _, raw := range c.QueryArray("between") {
		col, expr, ok := strings.Cut(raw, ":")
		if !ok {
			return req, fmt.Errorf("invalid range filter %q", raw)
		}

		f, ok := filters.ParseBetween(tabular.NormalizeHeader(col), expr)
		if !ok {
			return req, fmt.Errorf("invalid range filter %q", raw)
		}

		req.Filters = append(req.Filters, f)
	}

	if raw, ok := c.GetQuery("older_than_months"); ok {
		months, err := strconv.Atoi(raw)
		if err != nil || months <= 0 {
			return req, fmt.Errorf("invalid older_than_months %q", raw)
		}

		req.Filters = append(req.Filters,
			filters.OlderThanMonths(tabular.ColLastModified, months, time.Now()))
	}

	return req, nil
}

// splits a "column:value" threshold expression
func parseThreshold(raw string) (string, float64, error) {
	col, val, ok := strings.Cut(raw, ":")
	if !ok {
		return "", 0, fmt.Errorf("invalid threshold filter %q", raw)
	}

	v, parsed := tabular.ParseNumeric(val)
	if !parsed {
		return "", 0, fmt.Errorf("invalid threshold value in %q", raw)
	}

	return tabular.NormalizeHeader(col), v, nil
}
