package scoring

import (
	"math"
	"testing"

	"codeberg.org/seoradar/server/internal/tabular"
)

// builds a record with the metric fields the scorer reads
func metricRecord(sales, cv, pv, imp, p30, p7 string) tabular.Record {
	return tabular.Record{
		tabular.ColSales7d:        sales,
		tabular.ColConversions:    cv,
		tabular.ColPageViews7d:    pv,
		tabular.ColImpressions:    imp,
		tabular.ColAvgPosition30d: p30,
		tabular.ColAvgPosition7d:  p7,
	}
}

func TestRewritePriority_WorkedExample(t *testing.T) {
	// sales 100, cv 2, pv 500, imp 1000, growth 10%, position 5:
	// ln(101) + 2 + 0.5*ln(501) + 0.5*ln(1001) + 0.3*10 - 0.2*5 ≈ 15.18
	rec := metricRecord("100", "2", "500", "1000", "5.5556", "5")

	if growth := RecordGrowthRate(rec); growth != 10.0 {
		t.Fatalf("fixture growth rate = %v, want 10.0", growth)
	}

	got := RewritePriority(rec, DefaultConfig())

	if math.Abs(got-15.18) > 0.01 {
		t.Errorf("RewritePriority() = %v, want 15.18 ± 0.01", got)
	}
}

func TestRewritePriority_MissingFieldsCoerce(t *testing.T) {
	cfg := DefaultConfig()

	// an empty record scores with everything at 0 and position at the
	// unranked sentinel: -w_pos * 9999
	got := RewritePriority(tabular.Record{}, cfg)
	want := -cfg.WPosition * 9999

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("RewritePriority(empty) = %v, want %v", got, want)
	}
}

func TestRewritePriority_Monotonicity(t *testing.T) {
	cfg := DefaultConfig()
	base := metricRecord("100", "2", "500", "1000", "20", "10")
	baseScore := RewritePriority(base, cfg)

	increases := []struct {
		name string
		col  string
		val  string
	}{
		{"more sales", tabular.ColSales7d, "200"},
		{"more conversions", tabular.ColConversions, "5"},
		{"more page views", tabular.ColPageViews7d, "900"},
		{"more impressions", tabular.ColImpressions, "5000"},
		{"better growth", tabular.ColAvgPosition7d, "5"}, // improves growth and rank penalty
	}

	for _, tt := range increases {
		t.Run(tt.name, func(t *testing.T) {
			rec := base.Clone()
			rec[tt.col] = tt.val

			if got := RewritePriority(rec, cfg); got <= baseScore {
				t.Errorf("score %v not greater than base %v after %s", got, baseScore, tt.name)
			}
		})
	}

	t.Run("worse rank decreases score", func(t *testing.T) {
		rec := base.Clone()
		rec[tabular.ColAvgPosition7d] = "30"

		if got := RewritePriority(rec, cfg); got >= baseScore {
			t.Errorf("score %v not lower than base %v with worse rank", got, baseScore)
		}
	})
}

func TestRankRewritePriority_ExcludesZeroSales(t *testing.T) {
	rows := []tabular.Record{
		metricRecord("0", "50", "99999", "99999", "40", "20"),
		metricRecord("", "50", "99999", "99999", "40", "20"),
		metricRecord("-5", "50", "99999", "99999", "40", "20"),
		metricRecord("100", "1", "10", "10", "40", "20"),
	}

	ranked := RankRewritePriority(rows, DefaultConfig())

	if len(ranked) != 1 {
		t.Fatalf("got %d ranked rows, want 1", len(ranked))
	}

	if ranked[0].Record.Get(tabular.ColSales7d) != "100" {
		t.Errorf("surviving row has sales %q, want 100", ranked[0].Record.Get(tabular.ColSales7d))
	}
}

func TestRankRewritePriority_ExcludesDoubleTopRank(t *testing.T) {
	rows := []tabular.Record{
		// top-3 in both windows: excluded even with high sales
		metricRecord("500", "10", "5000", "9000", "2", "1"),
		metricRecord("500", "10", "5000", "9000", "3", "3"),
		// top-3 in only one window: kept
		metricRecord("500", "10", "5000", "9000", "2", "8"),
		metricRecord("500", "10", "5000", "9000", "10", "2"),
	}

	ranked := RankRewritePriority(rows, DefaultConfig())

	if len(ranked) != 2 {
		t.Fatalf("got %d ranked rows, want 2", len(ranked))
	}

	for _, sc := range ranked {
		p30 := sc.Record.NumOr(tabular.ColAvgPosition30d, 0)
		p7 := sc.Record.NumOr(tabular.ColAvgPosition7d, 0)

		if p30 <= 3 && p7 <= 3 {
			t.Errorf("double top-3 row survived: p30=%v p7=%v", p30, p7)
		}
	}
}

func TestRankRewritePriority_DescendingOrder(t *testing.T) {
	rows := []tabular.Record{
		metricRecord("10", "1", "100", "200", "30", "15"),
		metricRecord("5000", "20", "9000", "50000", "25", "10"),
		metricRecord("100", "2", "500", "1000", "20", "8"),
	}

	ranked := RankRewritePriority(rows, DefaultConfig())

	if len(ranked) != 3 {
		t.Fatalf("got %d ranked rows, want 3", len(ranked))
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Errorf("ranking not descending at %d: %v < %v", i, ranked[i-1].Score, ranked[i].Score)
		}
	}
}

func TestRankRewritePriority_StableOnTies(t *testing.T) {
	a := metricRecord("100", "2", "500", "1000", "20", "10")
	a[tabular.ColContentID] = "first"

	b := a.Clone()
	b[tabular.ColContentID] = "second"

	ranked := RankRewritePriority([]tabular.Record{a, b}, DefaultConfig())

	if len(ranked) != 2 {
		t.Fatalf("got %d ranked rows, want 2", len(ranked))
	}

	if ranked[0].Record.Get(tabular.ColContentID) != "first" {
		t.Errorf("tie order not stable: %q came first", ranked[0].Record.Get(tabular.ColContentID))
	}
}

func TestRankRewritePriority_ConfigurableThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSales = 50
	cfg.TopRankExclusion = 5

	rows := []tabular.Record{
		metricRecord("40", "1", "10", "10", "20", "10"), // below raised sales floor
		metricRecord("60", "1", "10", "10", "4", "5"),   // inside raised top-rank window
		metricRecord("60", "1", "10", "10", "20", "10"), // kept
	}

	ranked := RankRewritePriority(rows, cfg)

	if len(ranked) != 1 {
		t.Fatalf("got %d ranked rows, want 1", len(ranked))
	}
}
