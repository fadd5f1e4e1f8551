package snapshots

const (
	queryCreateSnapshot = `
		INSERT INTO dataset_snapshots (columns, row_count)
		VALUES ($1, $2)
		RETURNING id, columns, row_count, created_at
	`

	queryInsertRow = `
		INSERT INTO dataset_rows (snapshot_id, row_index, cells)
		VALUES ($1, $2, $3)
	`

	queryLatestSnapshot = `
		SELECT id, columns, row_count, created_at
		FROM dataset_snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`

	queryGetRows = `
		SELECT cells
		FROM dataset_rows
		WHERE snapshot_id = $1
		ORDER BY row_index ASC
	`

	queryHistory = `
		SELECT id, columns, row_count, created_at
		FROM dataset_snapshots
		ORDER BY created_at DESC
		LIMIT $1
	`

	queryPruneOld = `
		DELETE FROM dataset_snapshots
		WHERE id NOT IN (
			SELECT id FROM dataset_snapshots
			ORDER BY created_at DESC
			LIMIT $1
		)
	`
)
