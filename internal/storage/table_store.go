package storage

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"family-weight/internal/logger"
	"family-weight/internal/models"
)

// SaveResult describes what Save did with the rows
type SaveResult struct {
	// Sorted is false when at least one date cell did not parse and the
	// rows were written in their existing order.
	Sorted bool
	Rows   int
}

// TableStore persists a table as a CSV file: the header record followed by
// one record per row.
type TableStore struct {
	path   string
	logger logger.Logger
}

func NewTableStore(path string, log logger.Logger) *TableStore {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &TableStore{path: path, logger: log}
}

// Path returns the location of the backing file
func (s *TableStore) Path() string {
	return s.path
}

// Load reads the table. A missing or empty file yields an empty table and no error.
func (s *TableStore) Load() (models.Table, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("TableStore", "data file not found, starting empty", map[string]interface{}{
			"path": s.path,
		})
		return models.Table{}, nil
	}
	if err != nil {
		return models.Table{}, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(bufio.NewReader(f)).ReadAll()
	if err != nil {
		return models.Table{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(records) == 0 {
		s.logger.Info("TableStore", "data file is empty, starting empty", map[string]interface{}{
			"path": s.path,
		})
		return models.Table{}, nil
	}

	table := models.Table{
		Header: records[0],
		Rows:   records[1:],
	}

	s.logger.Debug("TableStore", "table loaded", map[string]interface{}{
		"path":    s.path,
		"columns": len(table.Header),
		"rows":    len(table.Rows),
	})

	return table, nil
}

// Save sorts the rows by date in place when every date parses, then rewrites
// the whole file. A failed sort is reported through SaveResult, never as an error.
func (s *TableStore) Save(table models.Table) (SaveResult, error) {
	result := SaveResult{
		Sorted: sortByDate(table.Rows),
		Rows:   len(table.Rows),
	}
	if !result.Sorted {
		s.logger.Debug("TableStore", "unparseable date, keeping row order", nil)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return result, fmt.Errorf("create %s: %w", s.path, err)
	}

	if err := writeTable(f, table); err != nil {
		f.Close()
		return result, fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return result, fmt.Errorf("close %s: %w", s.path, err)
	}

	s.logger.Debug("TableStore", "table saved", map[string]interface{}{
		"path":   s.path,
		"rows":   result.Rows,
		"sorted": result.Sorted,
	})

	return result, nil
}

func writeTable(w io.Writer, table models.Table) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(table.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// sortByDate stably sorts rows by their date cell. It leaves rows untouched
// and returns false if any date cell is missing or does not parse.
func sortByDate(rows [][]string) bool {
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		if len(row) <= models.DateColumn {
			return false
		}
		d, err := models.ParseDate(row[models.DateColumn])
		if err != nil {
			return false
		}
		dates[i] = d
	}

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return dates[a].Compare(dates[b])
	})

	sorted := make([][]string, len(rows))
	for i, idx := range order {
		sorted[i] = rows[idx]
	}
	copy(rows, sorted)
	return true
}
