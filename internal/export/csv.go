package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

// WriteTable writes header plus rows as comma-delimited text. The whole file
// is rendered in memory first; on a failed write the partial file is removed.
func WriteTable(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("encode row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteCandidate persists a single candidate row.
func WriteCandidate(path string, r entity.FlatRecord) error {
	return WriteTable(path, r.Header(), [][]string{r.Row()})
}

// WriteTaskPlan persists a task plan.
func WriteTaskPlan(path string, plan entity.TaskPlan) error {
	return WriteTable(path, entity.TaskHeader(), plan.Rows())
}

// ReadCandidate reads the first data row of a parsed resume file.
func ReadCandidate(path string) (entity.FlatRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.FlatRecord{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return entity.FlatRecord{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	row, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return entity.FlatRecord{}, fmt.Errorf("%s has no data rows", path)
		}
		return entity.FlatRecord{}, fmt.Errorf("read row of %s: %w", path, err)
	}
	return entity.FlatRecordFromRow(header, row), nil
}
