package reports

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"codeberg.org/seoradar/server/internal/filters"
	"codeberg.org/seoradar/server/internal/scoring"
	"codeberg.org/seoradar/server/internal/tabular"
	"codeberg.org/seoradar/server/seoradar/snapshots"
)

var ErrNoData = errors.New("no dataset available")

func NewService(cfg scoring.Config, repo *snapshots.Repository, dataFile string) *Service {
	return &Service{
		scoring:  cfg,
		repo:     repo,
		dataFile: dataFile,
	}
}

// loads the current dataset: the flat file the ingester maintains, falling
// back to the latest stored snapshot when the file is not on disk
func (s *Service) Load(ctx context.Context) (tabular.Table, error) {
	if _, err := os.Stat(s.dataFile); err == nil {
		table, err := tabular.ReadFile(s.dataFile)
		if err != nil {
			return tabular.Table{}, fmt.Errorf("failed to load data file: %w", err)
		}

		return table, nil
	}

	if s.repo == nil {
		return tabular.Table{}, ErrNoData
	}

	_, table, err := s.repo.Latest(ctx)
	if errors.Is(err, snapshots.ErrNoSnapshots) {
		return tabular.Table{}, ErrNoData
	}

	if err != nil {
		return tabular.Table{}, err
	}

	return table, nil
}

// runs one full reporting pass: load an immutable snapshot, apply the strict
// filters, rank per the requested mode and append the derived columns. Pure
// with respect to the loaded data; the input table is never mutated.
func (s *Service) Build(ctx context.Context, req Request) (*Report, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	return s.BuildFrom(table, req), nil
}

// like Build but over a caller-supplied table; the engine itself touches no
// storage here
func (s *Service) BuildFrom(table tabular.Table, req Request) *Report {
	rows := filters.Apply(withGrowthRate(table.Rows), req.Filters...)

	var scored []scoring.Scored

	switch req.Sort {
	case SortCVRPosition:
		scored = scoring.RankCVRPosition(rows)
	case SortImpressionRevenue:
		scored = scoring.RankImpressionRevenue(rows)
	case SortNone:
		scored = scoring.ScoreAll(rows, s.scoring)
	default:
		scored = scoring.RankRewritePriority(rows, s.scoring)
	}

	if req.Limit > 0 && len(scored) > req.Limit {
		scored = scored[:req.Limit]
	}

	report := &Report{
		Columns:     derivedColumns(table.Columns, req.Sort),
		Rows:        make([]tabular.Record, 0, len(scored)),
		SortedBy:    req.Sort,
		TotalRows:   len(scored),
		GeneratedAt: time.Now().UTC(),
	}

	scoreCol := scoreColumn(req.Sort)

	for _, sc := range scored {
		rec := sc.Record.Clone()
		rec[tabular.ColGrowthRate] = tabular.FormatNumeric(sc.GrowthRate)
		rec[scoreCol] = strconv.FormatFloat(sc.Score, 'f', 2, 64)
		report.Rows = append(report.Rows, rec)
	}

	return report
}

// clones every row with the growth rate column filled in, so thresholds on
// the derived column see it like any source column
func withGrowthRate(rows []tabular.Record) []tabular.Record {
	out := make([]tabular.Record, len(rows))
	for i, rec := range rows {
		out[i] = rec.Clone()
		out[i][tabular.ColGrowthRate] = tabular.FormatNumeric(scoring.RecordGrowthRate(rec))
	}

	return out
}

// name of the derived score column for a sort mode
func scoreColumn(mode SortMode) string {
	switch mode {
	case SortCVRPosition:
		return tabular.ColCVRPositionScore
	case SortImpressionRevenue:
		return tabular.ColImpressionRevenueScore
	default:
		return tabular.ColRewritePriority
	}
}

// output header: source columns plus the derived ones appended at the end
func derivedColumns(columns []string, mode SortMode) []string {
	out := make([]string, 0, len(columns)+2)
	out = append(out, columns...)

	if !contains(out, tabular.ColGrowthRate) {
		out = append(out, tabular.ColGrowthRate)
	}

	if col := scoreColumn(mode); !contains(out, col) {
		out = append(out, col)
	}

	return out
}

func contains(cols []string, col string) bool {
	for _, c := range cols {
		if c == col {
			return true
		}
	}

	return false
}
