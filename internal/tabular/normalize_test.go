package tabular

import "testing"

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "already canonical",
			raw:  "sales_7d",
			want: ColSales7d,
		},
		{
			name: "english alias",
			raw:  "page_view",
			want: ColPageViews7d,
		},
		{
			name: "japanese sales label",
			raw:  "売上(7日)",
			want: ColSales7d,
		},
		{
			name: "japanese position label",
			raw:  "平均順位(30日)",
			want: ColAvgPosition30d,
		},
		{
			name: "japanese title",
			raw:  "記事タイトル",
			want: ColTitle,
		},
		{
			name: "byte order mark stripped",
			raw:  "\uFEFFtitle",
			want: ColTitle,
		},
		{
			name: "case insensitive",
			raw:  "URL",
			want: ColURL,
		},
		{
			name: "surrounding whitespace",
			raw:  " keyword ",
			want: ColKeyword,
		},
		{
			name: "unknown column passes through lowercased",
			raw:  "Custom_Metric",
			want: "custom_metric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHeader(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeHeaders(t *testing.T) {
	raw := []string{"記事タイトル", "URL", "売上", "imp", "mystery"}
	want := []string{ColTitle, ColURL, ColSales7d, ColImpressions, "mystery"}

	got := NormalizeHeaders(raw)

	if len(got) != len(want) {
		t.Fatalf("got %d headers, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, got[i], want[i])
		}
	}
}
