package scoring

import (
	"sort"

	"codeberg.org/seoradar/server/internal/tabular"
)

// conversion rate divided by (average position + 1): rewards pages that both
// convert clicks well and already rank strongly. The +1 keeps rank 0 from
// dividing by zero. Missing or unparseable values coerce to 0.
func CVRPositionScore(rec tabular.Record) float64 {
	cv := rec.NumOr(tabular.ColConversions, 0)
	clicks := rec.NumOr(tabular.ColClicks, 0)
	pos := rec.NumOr(tabular.ColAvgPosition7d, 0)

	var cvr float64
	if clicks > 0 {
		cvr = cv / clicks
	}

	return cvr / (pos + 1)
}

// impressions multiplied by revenue, falling back to conversions when no
// direct revenue figure exists: a coarse demand-times-monetization proxy
func ImpressionRevenueScore(rec tabular.Record) float64 {
	imp := rec.NumOr(tabular.ColImpressions, 0)
	sales := rec.NumOr(tabular.ColSales7d, 0)

	revenue := sales
	if sales <= 0 {
		revenue = rec.NumOr(tabular.ColConversions, 0)
	}

	return imp * revenue
}

// scores and sorts every record by CVR x position descending. Unlike the
// rewrite ranking this applies no pre-filters.
func RankCVRPosition(rows []tabular.Record) []Scored {
	return rankBy(rows, CVRPositionScore)
}

// scores and sorts every record by impressions x revenue descending
func RankImpressionRevenue(rows []tabular.Record) []Scored {
	return rankBy(rows, ImpressionRevenueScore)
}

func rankBy(rows []tabular.Record, score func(tabular.Record) float64) []Scored {
	scored := make([]Scored, 0, len(rows))

	for _, rec := range rows {
		scored = append(scored, Scored{
			Record:     rec,
			GrowthRate: RecordGrowthRate(rec),
			Score:      score(rec),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
