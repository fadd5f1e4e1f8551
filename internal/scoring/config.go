package scoring

// default weights and thresholds; the business tuned these release to release,
// so everything is configuration rather than a constant at a call site
const (
	defaultWSales       = 1.0
	defaultWConversions = 1.0
	defaultWPageViews   = 0.5
	defaultWImpressions = 0.5
	defaultWGrowth      = 0.3
	defaultWPosition    = 0.2

	// records with sales at or below this are excluded from rewrite ranking
	defaultMinSales = 0.0

	// records already ranked at or above this in both windows are excluded
	defaultTopRankExclusion = 3.0

	// substituted for a missing average position: effectively unranked
	missingPositionSentinel = 9999.0
)

// tunable weights and exclusion thresholds for the rewrite-priority scorer
type Config struct {
	WSales       float64
	WConversions float64
	WPageViews   float64
	WImpressions float64
	WGrowth      float64
	WPosition    float64

	// sales_7d must be strictly greater than this to be scored
	MinSales float64

	// both position windows at or under this drops the record (no upside)
	TopRankExclusion float64
}

// returns the scorer configuration of the current release
func DefaultConfig() Config {
	return Config{
		WSales:           defaultWSales,
		WConversions:     defaultWConversions,
		WPageViews:       defaultWPageViews,
		WImpressions:     defaultWImpressions,
		WGrowth:          defaultWGrowth,
		WPosition:        defaultWPosition,
		MinSales:         defaultMinSales,
		TopRankExclusion: defaultTopRankExclusion,
	}
}
