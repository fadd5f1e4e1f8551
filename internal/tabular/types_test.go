package tabular

import "testing"

func TestRecordCategories(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma joined",
			raw:  "seo, content,guide",
			want: []string{"seo", "content", "guide"},
		},
		{
			name: "single tag",
			raw:  "news",
			want: []string{"news"},
		},
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "stray separators",
			raw:  ",seo,,",
			want: []string{"seo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{ColCategory: tt.raw}
			got := rec.Categories()

			if len(got) != len(tt.want) {
				t.Fatalf("Categories() = %v, want %v", got, tt.want)
			}

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("tag %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRecordClone(t *testing.T) {
	rec := Record{ColTitle: "a", ColSales7d: "100"}
	clone := rec.Clone()

	clone[ColGrowthRate] = "50.0"

	if _, ok := rec[ColGrowthRate]; ok {
		t.Error("mutating the clone changed the original")
	}
}

func TestTableHasColumn(t *testing.T) {
	table := Table{Columns: []string{ColTitle, ColSales7d}}

	if !table.HasColumn(ColTitle) {
		t.Error("HasColumn(title) = false")
	}

	if table.HasColumn(ColImpressions) {
		t.Error("HasColumn(imp) = true for absent column")
	}
}
