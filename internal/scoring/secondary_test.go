package scoring

import (
	"math"
	"testing"

	"codeberg.org/seoradar/server/internal/tabular"
)

func TestCVRPositionScore(t *testing.T) {
	tests := []struct {
		name string
		rec  tabular.Record
		want float64
	}{
		{
			name: "cvr scaled by rank",
			rec: tabular.Record{
				tabular.ColConversions:   "4",
				tabular.ColClicks:        "100",
				tabular.ColAvgPosition7d: "3",
			},
			want: 0.04 / 4, // cvr 0.04 over position+1
		},
		{
			name: "zero clicks means zero cvr",
			rec: tabular.Record{
				tabular.ColConversions:   "4",
				tabular.ColClicks:        "0",
				tabular.ColAvgPosition7d: "3",
			},
			want: 0,
		},
		{
			name: "rank zero survives the +1 guard",
			rec: tabular.Record{
				tabular.ColConversions:   "1",
				tabular.ColClicks:        "10",
				tabular.ColAvgPosition7d: "0",
			},
			want: 0.1,
		},
		{
			name: "missing position coerces to zero",
			rec: tabular.Record{
				tabular.ColConversions: "1",
				tabular.ColClicks:      "10",
			},
			want: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CVRPositionScore(tt.rec)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CVRPositionScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImpressionRevenueScore(t *testing.T) {
	tests := []struct {
		name string
		rec  tabular.Record
		want float64
	}{
		{
			name: "impressions times sales",
			rec: tabular.Record{
				tabular.ColImpressions: "1000",
				tabular.ColSales7d:     "50",
			},
			want: 50000,
		},
		{
			name: "falls back to conversions without revenue",
			rec: tabular.Record{
				tabular.ColImpressions: "1000",
				tabular.ColSales7d:     "0",
				tabular.ColConversions: "3",
			},
			want: 3000,
		},
		{
			name: "missing sales falls back to conversions",
			rec: tabular.Record{
				tabular.ColImpressions: "200",
				tabular.ColConversions: "2",
			},
			want: 400,
		},
		{
			name: "no monetization signal at all",
			rec: tabular.Record{
				tabular.ColImpressions: "1000",
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImpressionRevenueScore(tt.rec)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ImpressionRevenueScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSecondaryRankings_NoPreFilter(t *testing.T) {
	// zero-sales rows are excluded from rewrite ranking but NOT from the
	// secondary rankings
	rows := []tabular.Record{
		{
			tabular.ColSales7d:     "0",
			tabular.ColConversions: "5",
			tabular.ColClicks:      "50",
			tabular.ColImpressions: "1000",
		},
		{
			tabular.ColSales7d:     "100",
			tabular.ColConversions: "1",
			tabular.ColClicks:      "100",
			tabular.ColImpressions: "500",
		},
	}

	if got := len(RankCVRPosition(rows)); got != 2 {
		t.Errorf("RankCVRPosition kept %d rows, want 2", got)
	}

	if got := len(RankImpressionRevenue(rows)); got != 2 {
		t.Errorf("RankImpressionRevenue kept %d rows, want 2", got)
	}
}

func TestRankCVRPosition_Descending(t *testing.T) {
	rows := []tabular.Record{
		{tabular.ColConversions: "1", tabular.ColClicks: "100", tabular.ColAvgPosition7d: "9"},
		{tabular.ColConversions: "10", tabular.ColClicks: "100", tabular.ColAvgPosition7d: "1"},
		{tabular.ColConversions: "5", tabular.ColClicks: "100", tabular.ColAvgPosition7d: "4"},
	}

	ranked := RankCVRPosition(rows)

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Errorf("ranking not descending at %d", i)
		}
	}
}
