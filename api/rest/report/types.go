package report

// response body for a completed refresh
type RefreshResponse struct {
	SnapshotID string `json:"snapshot_id"`
	RowCount   int    `json:"row_count"`
	Message    string `json:"message"`
}
