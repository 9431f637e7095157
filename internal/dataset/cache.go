package dataset

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	_ "modernc.org/sqlite"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/worker"
)

// ErrNotImported means no rows are cached for the dataset/split.
var ErrNotImported = errors.New("dataset not imported")

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
    name TEXT NOT NULL,
    split_subset TEXT NOT NULL,
    total INTEGER NOT NULL,
    imported_at TEXT NOT NULL,
    PRIMARY KEY (name, split_subset)
);

CREATE TABLE IF NOT EXISTS rows (
    dataset TEXT NOT NULL,
    split_subset TEXT NOT NULL,
    idx INTEGER NOT NULL,
    data TEXT NOT NULL,
    PRIMARY KEY (dataset, split_subset, idx)
);
`

// decodeWorkers bounds the fan-out of JSONL decoding during import.
const decodeWorkers = 4

// ImportInfo describes one cached dataset split.
type ImportInfo struct {
	Dataset     string `json:"dataset"`
	SplitSubset string `json:"split_subset"`
	Total       int    `json:"total"`
	ImportedAt  string `json:"imported_at"`
}

// Cache is a sqlite-backed store of normalized dataset rows. Rows are
// written once per import and read back as the session engine's row
// feed.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the row cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening row cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying row cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

type decodedRow struct {
	Row Row
	Err error
}

// ImportJSONL ingests line-delimited JSON rows for a dataset split,
// replacing any previous import of the same split. Row order in the
// input defines the row indices. Decoding fans out through the worker
// pool; a single malformed line fails the whole import.
func (c *Cache) ImportJSONL(ctx context.Context, datasetID, splitSubset string, r io.Reader) (int, error) {
	if err := Validate(datasetID, splitSubset); err != nil {
		return 0, err
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading rows: %w", err)
	}
	if len(lines) == 0 {
		return 0, errors.New("no rows in input")
	}

	pool := worker.NewPool[decodedRow](decodeWorkers, decodeWorkers*2)
	go func() {
		for i, line := range lines {
			idx, data := i, line
			pool.Submit(idx, func() decodedRow {
				var row Row
				if err := json.Unmarshal([]byte(data), &row); err != nil {
					return decodedRow{Err: fmt.Errorf("row %d: %w", idx, err)}
				}
				row.Index = idx
				return decodedRow{Row: row}
			})
		}
		pool.Close()
	}()

	rows := make([]Row, len(lines))
	var decodeErr error
	for res := range pool.Results() {
		if res.Output.Err != nil && decodeErr == nil {
			decodeErr = res.Output.Err
		}
		rows[res.JobID] = res.Output.Row
	}
	if decodeErr != nil {
		return 0, decodeErr
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting import transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM rows WHERE dataset = ? AND split_subset = ?",
		datasetID, splitSubset,
	); err != nil {
		return 0, fmt.Errorf("clearing previous import: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO rows (dataset, split_subset, idx, data) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing row insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("encoding row %d: %w", row.Index, err)
		}
		if _, err := stmt.ExecContext(ctx, datasetID, splitSubset, row.Index, string(data)); err != nil {
			return 0, fmt.Errorf("inserting row %d: %w", row.Index, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO datasets (name, split_subset, total, imported_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (name, split_subset) DO UPDATE SET total = excluded.total, imported_at = excluded.imported_at`,
		datasetID, splitSubset, len(rows), time.Now().Format(time.RFC3339),
	); err != nil {
		return 0, fmt.Errorf("recording import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return len(rows), nil
}

// Rows returns all cached rows of a dataset split in index order.
func (c *Cache) Rows(ctx context.Context, datasetID, splitSubset string) ([]Row, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT data FROM rows WHERE dataset = ? AND split_subset = ? ORDER BY idx",
		datasetID, splitSubset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var row Row
		if err := json.Unmarshal([]byte(data), &row); err != nil {
			return nil, fmt.Errorf("decoding cached row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s/%s: %w", datasetID, splitSubset, ErrNotImported)
	}
	return out, nil
}

// Count returns the cached row count of a dataset split.
func (c *Cache) Count(ctx context.Context, datasetID, splitSubset string) (int, error) {
	var total int
	err := c.db.QueryRowContext(ctx,
		"SELECT total FROM datasets WHERE name = ? AND split_subset = ?",
		datasetID, splitSubset,
	).Scan(&total)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%s/%s: %w", datasetID, splitSubset, ErrNotImported)
	}
	if err != nil {
		return 0, err
	}
	return total, nil
}

// List enumerates all cached dataset splits.
func (c *Cache) List(ctx context.Context) ([]ImportInfo, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT name, split_subset, total, imported_at FROM datasets ORDER BY name, split_subset")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ImportInfo
	for rows.Next() {
		var info ImportInfo
		if err := rows.Scan(&info.Dataset, &info.SplitSubset, &info.Total, &info.ImportedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}
