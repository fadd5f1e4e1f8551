package reports

import (
	"context"
	"fmt"

	"codeberg.org/seoradar/server/internal/ingest"
	"codeberg.org/seoradar/server/internal/logger"
	"codeberg.org/seoradar/server/internal/tabular"
	"codeberg.org/seoradar/server/seoradar/snapshots"
)

// re-ingests the upstream dataset: fetch, overwrite the flat file, store a
// snapshot. The dataset is replaced wholesale; there is no merge.
type Refresher struct {
	fetcher  *ingest.Fetcher
	repo     *snapshots.Repository
	dataFile string
}

func NewRefresher(fetcher *ingest.Fetcher, repo *snapshots.Repository, dataFile string) *Refresher {
	return &Refresher{
		fetcher:  fetcher,
		repo:     repo,
		dataFile: dataFile,
	}
}

// fetches the latest dataset and persists it. A fetch failure leaves the
// previous flat file and snapshots untouched.
func (r *Refresher) Refresh(ctx context.Context) (*snapshots.Snapshot, error) {
	table, err := r.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := tabular.WriteFile(r.dataFile, table); err != nil {
		return nil, fmt.Errorf("failed to write data file: %w", err)
	}

	snap, err := r.repo.Save(ctx, table)
	if err != nil {
		return nil, err
	}

	logger.Info("dataset refreshed",
		"snapshot_id", snap.ID,
		"rows", snap.RowCount,
		"data_file", r.dataFile,
	)

	return snap, nil
}
