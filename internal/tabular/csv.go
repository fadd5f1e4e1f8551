package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// the upstream sheet export writes utf-8-sig; tolerate it on read, emit it on
// write so spreadsheet tools keep recognizing the file
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// reads a CSV stream into a table, normalizing headers to canonical names
func Read(r io.Reader) (Table, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read csv input: %w", err)
	}

	buf = bytes.TrimPrefix(buf, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(buf))
	reader.FieldsPerRecord = -1 // sheet exports occasionally have ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to parse csv: %w", err)
	}

	if len(rows) == 0 {
		return Table{}, nil
	}

	columns := NormalizeHeaders(rows[0])
	table := Table{Columns: columns, Rows: make([]Record, 0, len(rows)-1)}

	for _, raw := range rows[1:] {
		rec := make(Record, len(columns))

		for i, col := range columns {
			if i < len(raw) {
				rec[col] = raw[i]
			}
		}

		table.Rows = append(table.Rows, rec)
	}

	return table, nil
}

// reads a table from a CSV file on disk
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return Read(f)
}

// writes a table as CSV with a UTF-8 BOM
func Write(w io.Writer, table Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range table.Rows {
		row := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			row[i] = rec[col]
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// writes a table to disk atomically (temp file + rename) so a concurrent
// reader never observes a half-written snapshot
func WriteFile(path string, table Table) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".snapshot-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := Write(tmp, table); err != nil {
		tmp.Close()           //nolint:errcheck // cleanup path
		os.Remove(tmp.Name()) //nolint:errcheck // cleanup path
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck // cleanup path
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck // cleanup path
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
