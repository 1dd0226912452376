package records

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CSVStoreSuite struct {
	suite.Suite
	ctx    context.Context
	logger *slog.Logger
}

func TestCSVStoreSuite(t *testing.T) {
	suite.Run(t, new(CSVStoreSuite))
}

func (s *CSVStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *CSVStoreSuite) writeCSV(content string) string {
	path := filepath.Join(s.T().TempDir(), "radicados.csv")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CSVStoreSuite) TestLoadsRecordsInOrder() {
	path := s.writeCSV("Cedula,Delito\n111,Hurto\n222,Estafa\n")
	store := NewCSVStore(path, s.logger)

	recs, err := store.All(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.Equal("111", Resolve(recs[0], FieldID))
	s.Equal("Hurto", Resolve(recs[0], FieldOffense))
	s.Equal("222", Resolve(recs[1], FieldID))
}

func (s *CSVStoreSuite) TestByteOrderMarkAndHeaderWhitespaceTolerated() {
	path := s.writeCSV("\uFEFFCedula , Delito\n111,Hurto\n")
	store := NewCSVStore(path, s.logger)

	recs, err := store.All(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Equal("111", Resolve(recs[0], FieldID))
}

func (s *CSVStoreSuite) TestMissingFileYieldsEmptyStoreNotError() {
	store := NewCSVStore(filepath.Join(s.T().TempDir(), "nope.csv"), s.logger)

	recs, err := store.All(s.ctx)
	s.Require().NoError(err)
	s.Empty(recs)
}

func (s *CSVStoreSuite) TestShortRowsTolerated() {
	path := s.writeCSV("Cedula,Delito,Juzgado\n111,Hurto\n")
	store := NewCSVStore(path, s.logger)

	recs, err := store.All(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Equal("", Resolve(recs[0], FieldCourt))
}

func (s *CSVStoreSuite) TestLoadOnceCachesAcrossCalls() {
	path := s.writeCSV("Cedula\n111\n")
	store := NewCSVStore(path, s.logger)

	first, err := store.All(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(first, 1)

	// Rewriting the file must not change the cached store: load happens once
	// per process.
	s.Require().NoError(os.WriteFile(path, []byte("Cedula\n111\n222\n"), 0o600))

	second, err := store.All(s.ctx)
	s.Require().NoError(err)
	s.Len(second, 1)
	s.Equal(first[0], second[0])
}

func TestCSVStoreConcurrentFirstLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radicados.csv")
	require.NoError(t, os.WriteFile(path, []byte("Cedula\n111\n"), 0o600))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewCSVStore(path, logger)

	done := make(chan []Record, 8)
	for range 8 {
		go func() {
			recs, _ := store.All(context.Background())
			done <- recs
		}()
	}
	for range 8 {
		recs := <-done
		require.Len(t, recs, 1)
	}
}
