package snapshots

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// metadata for one ingested dataset snapshot
type Snapshot struct {
	ID        string    `json:"id"`
	RowCount  int       `json:"row_count"`
	Columns   []string  `json:"columns"`
	CreatedAt time.Time `json:"created_at"`
}
