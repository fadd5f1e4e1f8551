package scoring

import (
	"math"

	"codeberg.org/seoradar/server/internal/tabular"
)

// percentage rank improvement from the 30-day window to the 7-day window,
// rounded to one decimal. Positive means the page moved to a better (lower)
// position recently. A zero, missing or unparseable 30-day position yields 0:
// no signal, never an error.
func GrowthRate(p30, p7 float64) float64 {
	if p30 <= 0 {
		return 0
	}

	rate := ((p30 - p7) / p30) * 100

	return math.Round(rate*10) / 10
}

// growth rate for a record, coercing missing/unparseable positions to 0
func RecordGrowthRate(rec tabular.Record) float64 {
	p30 := rec.NumOr(tabular.ColAvgPosition30d, 0)
	p7 := rec.NumOr(tabular.ColAvgPosition7d, 0)

	return GrowthRate(p30, p7)
}
