package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/cosmocalc/internal/experiment"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one saved survey.
type RunMetadata struct {
	ID         string             `json:"id"`
	Cosmology  string             `json:"cosmology"`
	Parameters map[string]float64 `json:"parameters"`
	Timestamp  time.Time          `json:"timestamp"`
	Rule       string             `json:"rule"`
	Step       float64            `json:"step"`
	Points     int                `json:"points"`
	ZMin       float64            `json:"z_min"`
	ZMax       float64            `json:"z_max"`
	ElapsedMS  float64            `json:"elapsed_ms"`
}

// Table is a loaded table.csv.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Column returns the named column, or nil.
func (t *Table) Column(name string) []float64 {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			out = append(out, row[idx])
		}
	}
	return out
}

func (s *Store) Save(result *experiment.Result) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	c := result.Cosmology
	meta := RunMetadata{
		ID:        runID,
		Cosmology: c.Name(),
		Parameters: map[string]float64{
			"h0":        c.H0().Value(),
			"omega_m0":  c.OmegaM0().Value(),
			"omega_de0": c.OmegaDE0().Value(),
			"omega_b0":  c.OmegaB0().Value(),
			"omega_k0":  c.OmegaK0().Value(),
			"tcmb0":     c.CMBTemperature0().Value(),
			"n_eff":     c.NEff().Value(),
		},
		Timestamp: time.Now().UTC(),
		Rule:      result.Rule,
		Step:      result.Step,
		Points:    len(result.Rows),
		ElapsedMS: float64(result.Elapsed.Microseconds()) / 1000,
	}
	if n := len(result.Rows); n > 0 {
		meta.ZMin = result.Rows[0].Redshift
		meta.ZMax = result.Rows[n-1].Redshift
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "table.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(experiment.Columns); err != nil {
		return "", err
	}
	for _, r := range result.Rows {
		vals := r.Values()
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTable(runID string) (*Table, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "table.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	table := &Table{
		Columns: records[0],
		Rows:    make([][]float64, 0, len(records)-1),
	}
	for i, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("table.csv row %d column %s: %w", i+1, table.Columns[j], err)
			}
			row[j] = v
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
