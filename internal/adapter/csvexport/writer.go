// Package csvexport writes flattened victim rows to a CSV file.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/ransomwatch-pull/internal/domain"
)

// Writer serializes export rows to a CSV file with the fixed column header.
// It implements pipeline.Exporter.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a CSV export writer.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// WriteRows writes the header and one line per row to path, creating parent
// directories as needed and truncating any existing file. Rows are written
// in input order.
func (w *Writer) WriteRows(path string, rows []domain.ExportRow) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(domain.CSVColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range rows {
		if err := cw.Write(rows[i].CSVValues()); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	w.logger.Debug("csv export written", "path", path, "rows", len(rows))
	return nil
}
