package storage

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
)

type ExportData struct {
	Metadata RunMetadata          `json:"metadata"`
	Rows     []map[string]float64 `json:"rows"`
}

// ExportJSON writes a run's metadata and rows as one JSON document. Values
// JSON cannot carry, such as the -Inf distance modulus at z = 0, are omitted
// from their row.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	table, err := s.LoadTable(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Metadata: *meta,
		Rows:     make([]map[string]float64, len(table.Rows)),
	}
	for i, row := range table.Rows {
		m := make(map[string]float64, len(row))
		for j, v := range row {
			if j < len(table.Columns) && !math.IsInf(v, 0) && !math.IsNaN(v) {
				m[table.Columns[j]] = v
			}
		}
		data.Rows[i] = m
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV copies a run's table.csv to w.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	if _, err := s.Load(runID); err != nil {
		return err
	}
	file, err := os.Open(filepath.Join(s.baseDir, runID, "table.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(w, file)
	return err
}
