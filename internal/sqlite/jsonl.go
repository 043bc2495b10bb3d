package sqlite

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/registrar/internal/validate"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// ExportJSONL writes every row of table to path as one JSON object per line,
// keyed by column name. The file is replaced atomically. Returns the number of
// rows written.
func (b *Backend) ExportJSONL(table, path string) (int, error) {
	columns, err := b.ListColumns(table)
	if err != nil {
		return 0, err
	}
	rows, err := b.FetchAll(table)
	if err != nil {
		return 0, err
	}

	records := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		rec, err := json.Marshal(rowObject(columns, row))
		if err != nil {
			return 0, fmt.Errorf("marshaling %s row: %w", table, err)
		}
		records = append(records, rec)
	}

	if err := writeJSONL(path, records); err != nil {
		return 0, &types.StoreError{Op: "export " + table, Err: err}
	}
	b.logger.Debug("export", "table", table, "path", path, "rows", len(records))
	return len(records), nil
}

// ImportJSONL inserts one row per JSON object in path. Identity keys in the
// file are ignored and the store assigns fresh ones. Field values go through
// validate.Coerce exactly like typed input. Malformed lines are skipped; the
// import stops at the first rejected record and returns the number of rows
// inserted before it.
func (b *Backend) ImportJSONL(table, path string) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, &types.StoreError{Op: "import " + table, Err: err}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return 0, err
	}
	if types.IsSystemCatalog(table) {
		return 0, types.ErrReadOnlyTable
	}
	columns, err := b.columnsLocked(table)
	if err != nil {
		return 0, err
	}

	n := 0
	for i, rec := range records {
		values, err := importValues(columns, rec)
		if err != nil {
			return n, fmt.Errorf("record %d: %w", i+1, err)
		}
		if _, err := b.insertLocked(table, values); err != nil {
			return n, fmt.Errorf("record %d: %w", i+1, err)
		}
		n++
	}
	b.logger.Info("import", "table", table, "path", path, "rows", n)
	return n, nil
}

// importValues lays a JSON object out as field text and coerces it.
func importValues(columns []types.Column, rec json.RawMessage) (types.Values, error) {
	dec := json.NewDecoder(bytes.NewReader(rec))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, &types.ValidationError{Message: "record is not a JSON object"}
	}

	pending := make([]string, len(columns))
	for i, c := range columns {
		if c.Kind != types.KindIdentity {
			pending[i] = types.CellText(obj[c.Name])
		}
	}
	return validate.Coerce(columns, pending)
}

// rowObject pairs each cell with its column name.
func rowObject(columns []types.Column, row types.Row) map[string]any {
	obj := make(map[string]any, len(columns))
	for i, c := range columns {
		if i < len(row) {
			obj[c.Name] = row[i]
		}
	}
	return obj
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(format string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf(format, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
