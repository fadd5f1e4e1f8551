package snapshots

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/seoradar/server/internal/tabular"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoSnapshots = errors.New("no snapshots stored")

// how many historical snapshots survive a save; the dataset is replaced
// wholesale on every refresh, older copies only exist for auditing
const retainedSnapshots = 20

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// stores an ingested table as a new immutable snapshot and prunes history
// beyond the retention window
func (r *Repository) Save(ctx context.Context, table tabular.Table) (*Snapshot, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	var snap Snapshot

	err = tx.QueryRow(ctx, queryCreateSnapshot, table.Columns, len(table.Rows)).Scan(
		&snap.ID,
		&snap.Columns,
		&snap.RowCount,
		&snap.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	for i, rec := range table.Rows {
		if _, err := tx.Exec(ctx, queryInsertRow, snap.ID, i, rec); err != nil {
			return nil, fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if _, err := tx.Exec(ctx, queryPruneOld, retainedSnapshots); err != nil {
		return nil, fmt.Errorf("failed to prune old snapshots: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return &snap, nil
}

// returns the most recent snapshot and its full table
func (r *Repository) Latest(ctx context.Context) (*Snapshot, tabular.Table, error) {
	var snap Snapshot

	err := r.db.QueryRow(ctx, queryLatestSnapshot).Scan(
		&snap.ID,
		&snap.Columns,
		&snap.RowCount,
		&snap.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, tabular.Table{}, ErrNoSnapshots
	}

	if err != nil {
		return nil, tabular.Table{}, fmt.Errorf("failed to load latest snapshot: %w", err)
	}

	rows, err := r.db.Query(ctx, queryGetRows, snap.ID)
	if err != nil {
		return nil, tabular.Table{}, fmt.Errorf("failed to load snapshot rows: %w", err)
	}
	defer rows.Close()

	table := tabular.Table{Columns: snap.Columns, Rows: make([]tabular.Record, 0, snap.RowCount)}

	for rows.Next() {
		var rec tabular.Record
		if err := rows.Scan(&rec); err != nil {
			return nil, tabular.Table{}, fmt.Errorf("failed to scan snapshot row: %w", err)
		}

		table.Rows = append(table.Rows, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, tabular.Table{}, fmt.Errorf("failed to read snapshot rows: %w", err)
	}

	return &snap, table, nil
}

// lists snapshot metadata, newest first
func (r *Repository) History(ctx context.Context, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = retainedSnapshots
	}

	rows, err := r.db.Query(ctx, queryHistory, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot

	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Columns, &s.RowCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}

		snaps = append(snaps, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}

	return snaps, nil
}
