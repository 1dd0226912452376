package records

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultCSVPath is the documented fallback when no candidate path exists.
const DefaultCSVPath = "data/radicados.csv"

// CSVStore loads case records from a comma-delimited file with a header
// row. The file is located by probing a short list of candidate paths and
// read at most once per process; concurrent first readers are serialized by
// sync.Once and everyone afterwards shares the cached slice.
type CSVStore struct {
	path   string
	logger *slog.Logger

	once    sync.Once
	records []Record
}

// NewCSVStore builds a store backed by the file at path. An empty path
// defers to the candidate-path probe at load time.
func NewCSVStore(path string, logger *slog.Logger) *CSVStore {
	return &CSVStore{path: path, logger: logger}
}

// All returns the cached records, loading the file on first call. A missing
// file yields an empty store, never an error.
func (s *CSVStore) All(ctx context.Context) ([]Record, error) {
	s.once.Do(s.load)
	return s.records, nil
}

func (s *CSVStore) load() {
	path := s.resolvePath()

	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("record store file not readable, lookups will be unavailable",
			"path", path,
			"error", err,
		)
		s.records = []Record{}
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil || len(rows) == 0 {
		s.logger.Error("record store file could not be parsed",
			"path", path,
			"error", err,
		)
		s.records = []Record{}
		return
	}

	headers := rows[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(headers[i], "\uFEFF"))
	}

	recs := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		recs = append(recs, rec)
	}
	s.records = recs

	s.logger.Info("record store loaded", "path", path, "records", len(recs))
	if len(recs) > 0 {
		s.logger.Debug("record store headers", "headers", headers)
	}
}

// resolvePath probes the configured path, the data directory next to the
// binary's working tree, one level up, and the CWD-anchored default. The
// first existing path wins; otherwise the documented default is returned
// so the failure is reported against a predictable location.
func (s *CSVStore) resolvePath() string {
	candidates := make([]string, 0, 4)
	if s.path != "" {
		candidates = append(candidates, s.path)
	}
	candidates = append(candidates, DefaultCSVPath, filepath.Join("..", DefaultCSVPath))
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultCSVPath))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	if s.path != "" {
		return s.path
	}
	return DefaultCSVPath
}
