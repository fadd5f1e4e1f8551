package scoring

import (
	"math"
	"sort"

	"codeberg.org/seoradar/server/internal/tabular"
)

// a record paired with its derived values after a ranking pass
type Scored struct {
	Record     tabular.Record
	GrowthRate float64
	Score      float64
}

// composite rewrite-benefit score for one record. Heavy-tailed metrics
// (sales, page views, impressions) enter through ln(x+1) so a single outlier
// cannot dominate the ranking; conversions and growth rate are already
// small-scale and enter linearly; average position is penalized so content
// that already ranks near the top gains less than the "almost there" case.
// Missing metrics coerce to 0, missing position to the unranked sentinel.
// Never errors.
func RewritePriority(rec tabular.Record, cfg Config) float64 {
	sales := rec.NumOr(tabular.ColSales7d, 0)
	cv := rec.NumOr(tabular.ColConversions, 0)
	pv := rec.NumOr(tabular.ColPageViews7d, 0)
	imp := rec.NumOr(tabular.ColImpressions, 0)
	pos := rec.NumOr(tabular.ColAvgPosition7d, missingPositionSentinel)
	growth := RecordGrowthRate(rec)

	return cfg.WSales*math.Log(sales+1) +
		cfg.WConversions*cv +
		cfg.WPageViews*math.Log(pv+1) +
		cfg.WImpressions*math.Log(imp+1) +
		cfg.WGrowth*growth -
		cfg.WPosition*pos
}

// reports whether a record survives the rewrite-priority pre-filters:
// it needs some revenue signal, and content already top-ranked in both
// windows has no meaningful rewrite upside
func eligibleForRewrite(rec tabular.Record, cfg Config) bool {
	sales := rec.NumOr(tabular.ColSales7d, 0)
	if sales <= cfg.MinSales {
		return false
	}

	p30, ok30 := rec.Num(tabular.ColAvgPosition30d)
	p7, ok7 := rec.Num(tabular.ColAvgPosition7d)

	if ok30 && ok7 && p30 <= cfg.TopRankExclusion && p7 <= cfg.TopRankExclusion {
		return false
	}

	return true
}

// applies the pre-filters, scores the survivors and returns them sorted by
// rewrite priority descending. Ties keep input order (stable sort).
func RankRewritePriority(rows []tabular.Record, cfg Config) []Scored {
	scored := make([]Scored, 0, len(rows))

	for _, rec := range rows {
		if !eligibleForRewrite(rec, cfg) {
			continue
		}

		scored = append(scored, Scored{
			Record:     rec,
			GrowthRate: RecordGrowthRate(rec),
			Score:      RewritePriority(rec, cfg),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// scores every record without filtering or sorting; used when the caller
// only wants the derived columns appended
func ScoreAll(rows []tabular.Record, cfg Config) []Scored {
	scored := make([]Scored, 0, len(rows))

	for _, rec := range rows {
		scored = append(scored, Scored{
			Record:     rec,
			GrowthRate: RecordGrowthRate(rec),
			Score:      RewritePriority(rec, cfg),
		})
	}

	return scored
}
